package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aescanero/dago-libs/pkg/domain"
	"github.com/aescanero/dago-libs/pkg/domain/state"
	"github.com/aescanero/dago-node-template/internal/config"
	"github.com/aescanero/dago-node-template/internal/render"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStateStore keeps graph state in memory.
type memoryStateStore struct {
	states map[string]state.State
}

func (s *memoryStateStore) Save(_ context.Context, executionID string, st state.State) error {
	s.states[executionID] = st
	return nil
}

func (s *memoryStateStore) Load(_ context.Context, executionID string) (state.State, error) {
	st, ok := s.states[executionID]
	if !ok {
		return nil, errors.New("state not found")
	}
	return st, nil
}

func (s *memoryStateStore) Delete(_ context.Context, executionID string) error {
	delete(s.states, executionID)
	return nil
}

func (s *memoryStateStore) Exists(_ context.Context, executionID string) (bool, error) {
	_, ok := s.states[executionID]
	return ok, nil
}

func (s *memoryStateStore) SetTTL(context.Context, string, time.Duration) error {
	return nil
}

func (s *memoryStateStore) List(context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *memoryStateStore) SaveState(ctx context.Context, st interface{}) error {
	m, ok := st.(map[string]interface{})
	if !ok {
		return errors.New("unexpected state type")
	}
	id, _ := m["graph_id"].(string)
	return s.Save(ctx, id, state.State(m))
}

func (s *memoryStateStore) GetState(ctx context.Context, graphID string) (interface{}, error) {
	return s.Load(ctx, graphID)
}

func newTestWorker(store *memoryStateStore) *Worker {
	cfg := &config.Config{
		WorkerID:      "template-test",
		StreamKey:     "template.work",
		ConsumerGroup: "template-workers",
		ResultStream:  "template.rendered",
		RenderTimeout: time.Second,
	}
	return NewWorker(cfg, nil, render.NewRenderer(true, zap.NewNop()), store, zap.NewNop())
}

func TestParseWorkRequest(t *testing.T) {
	request, err := parseWorkRequest(map[string]interface{}{
		"data": `{"execution_id":"exec-1","node_id":"summary","config":{"template":"{{title}}"}}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "exec-1", request.ExecutionID)
	assert.Equal(t, "summary", request.NodeID)
	assert.Equal(t, "{{title}}", request.Config["template"])
}

func TestParseWorkRequestErrors(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]interface{}
		wantErr string
	}{
		{"missing data", map[string]interface{}{}, "missing or invalid 'data' field"},
		{"wrong type", map[string]interface{}{"data": 42}, "missing or invalid 'data' field"},
		{"bad json", map[string]interface{}{"data": "{"}, "failed to unmarshal work request"},
		{"no execution", map[string]interface{}{"data": `{"node_id":"n"}`}, "execution_id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseWorkRequest(tt.values)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseNodeConfig(t *testing.T) {
	nodeConfig, err := parseNodeConfig(map[string]interface{}{
		"template": "default",
		"variants": []interface{}{
			map[string]interface{}{"name": "vip", "condition": "state.status == 'running'", "template": "vip"},
		},
		"data": map[string]interface{}{"title": "Report"},
	})
	require.NoError(t, err)

	assert.Equal(t, "default", nodeConfig.Template)
	require.Len(t, nodeConfig.Variants, 1)
	assert.Equal(t, render.Variant{Name: "vip", Condition: "state.status == 'running'", Template: "vip"}, nodeConfig.Variants[0])
	assert.Equal(t, "Report", nodeConfig.Data["title"])

	_, err = parseNodeConfig(map[string]interface{}{"variants": "not a list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config")
}

func TestRenderRequest(t *testing.T) {
	store := &memoryStateStore{states: map[string]state.State{
		"g-9": {},
	}}
	w := newTestWorker(store)
	defer w.cancel()

	result, err := w.renderRequest(context.Background(), &WorkRequest{
		ExecutionID: "g-9",
		NodeID:      "summary",
		Config: map[string]interface{}{
			"template": "{{capitalizeFirst title}} for {{state.graph_id}}",
			"data":     map[string]interface{}{"title": "report"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Report for g-9", result.Output)
	assert.Equal(t, render.PathDefault, result.PathTaken)
}

func TestRenderRequestErrors(t *testing.T) {
	store := &memoryStateStore{states: map[string]state.State{"g-1": {}}}
	w := newTestWorker(store)
	defer w.cancel()
	ctx := context.Background()

	_, err := w.renderRequest(ctx, &WorkRequest{ExecutionID: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load state")

	_, err = w.renderRequest(ctx, &WorkRequest{ExecutionID: "g-1", Config: map[string]interface{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render failed")
	assert.Contains(t, err.Error(), "default template is required")

	_, err = w.renderRequest(ctx, &WorkRequest{
		ExecutionID: "g-1",
		Config:      map[string]interface{}{"template": `{{#compare 1}}x{{/compare}}`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render failed")
}

func TestResultEvent(t *testing.T) {
	event := resultEvent(
		&WorkRequest{ExecutionID: "exec-1", NodeID: "summary"},
		&render.Result{Output: "Hola", Variant: "es", PathTaken: render.PathVariant, Reasoning: "matched variant 0"},
	)

	_, err := uuid.Parse(event["render_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "exec-1", event["execution_id"])
	assert.Equal(t, "summary", event["node_id"])
	assert.Equal(t, "Hola", event["output"])
	assert.Equal(t, "es", event["variant"])
	assert.Equal(t, render.PathVariant, event["path_taken"])
	assert.IsType(t, time.Time{}, event["timestamp"])

	other := resultEvent(&WorkRequest{}, &render.Result{})
	assert.NotEqual(t, event["render_id"], other["render_id"])
}

func TestConvertToGraphState(t *testing.T) {
	graphState, err := convertToGraphState("exec-1", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "exec-1", graphState.GraphID)

	rs := toRenderState(graphState)
	assert.Equal(t, "exec-1", rs.GraphID)
	assert.Empty(t, rs.NodeStates)
}

func TestConvertNodeStates(t *testing.T) {
	converted := convertNodeStates(map[string]*domain.NodeState{
		"fetch": {},
		"gone":  nil,
	})

	require.Len(t, converted, 1)
	fetch, ok := converted["fetch"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, fetch, "status")
	assert.Contains(t, fetch, "output")
	assert.Contains(t, fetch, "completed_at")
}

func TestInputsOf(t *testing.T) {
	assert.Nil(t, inputsOf(nil))

	plain := map[string]interface{}{"a": 1}
	assert.Equal(t, plain, inputsOf(plain))

	typed := map[string]string{"lang": "es"}
	assert.Equal(t, map[string]interface{}{"lang": "es"}, inputsOf(typed))

	assert.Nil(t, inputsOf([]int{1, 2}))
}
