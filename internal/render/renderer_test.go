package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func greetingConfig() *NodeConfig {
	return &NodeConfig{
		Template: "Hello {{capitalizeFirst name}}",
		Variants: []Variant{
			{Name: "es", Condition: "state.inputs.lang == 'es'", Template: "Hola {{capitalizeFirst name}}"},
			{Name: "fr", Condition: "state.inputs.lang == 'fr'", Template: "Bonjour {{capitalizeFirst name}}"},
		},
	}
}

func stateWith(inputs map[string]interface{}) *State {
	return &State{
		GraphID: "g-1",
		Status:  "running",
		Inputs:  inputs,
	}
}

func TestRenderSelectsVariant(t *testing.T) {
	renderer := NewRenderer(true, zap.NewNop())

	result, err := renderer.Render(context.Background(), stateWith(map[string]interface{}{
		"name": "ana",
		"lang": "fr",
	}), greetingConfig())
	require.NoError(t, err)

	assert.Equal(t, "Bonjour Ana", result.Output)
	assert.Equal(t, "fr", result.Variant)
	assert.Equal(t, PathVariant, result.PathTaken)
	assert.Contains(t, result.Reasoning, "matched variant 1")
}

func TestRenderFallsBackToDefault(t *testing.T) {
	renderer := NewRenderer(true, zap.NewNop())

	result, err := renderer.Render(context.Background(), stateWith(map[string]interface{}{
		"name": "ana",
		"lang": "de",
	}), greetingConfig())
	require.NoError(t, err)

	assert.Equal(t, "Hello Ana", result.Output)
	assert.Empty(t, result.Variant)
	assert.Equal(t, PathDefault, result.PathTaken)
	assert.Equal(t, "no variants matched", result.Reasoning)
}

func TestRenderSkipsBrokenVariants(t *testing.T) {
	renderer := NewRenderer(true, zap.NewNop())
	config := &NodeConfig{
		Template: "default",
		Variants: []Variant{
			{Name: "broken", Condition: "state.inputs.missing == 1", Template: "broken"},
			{Name: "not-bool", Condition: "state.status", Template: "not-bool"},
			{Name: "ok", Condition: "state.status == 'running'", Template: "ok"},
		},
	}

	result, err := renderer.Render(context.Background(), stateWith(nil), config)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Output)
	assert.Equal(t, "ok", result.Variant)
}

func TestRenderWithCELDisabled(t *testing.T) {
	renderer := NewRenderer(false, zap.NewNop())

	result, err := renderer.Render(context.Background(), stateWith(map[string]interface{}{
		"name": "ana",
		"lang": "es",
	}), greetingConfig())
	require.NoError(t, err)
	assert.Equal(t, "Hello Ana", result.Output)
	assert.Equal(t, PathDefault, result.PathTaken)
}

func TestTemplateData(t *testing.T) {
	renderer := NewRenderer(true, zap.NewNop())
	config := &NodeConfig{
		Template: `{{state.graph_id}} {{title}} {{#is owner "input"}}input wins{{/is}} {{#each state.node_states.fetch}}{{@key}}={{this}};{{/each}}`,
		Data: map[string]interface{}{
			"title": "Report",
			"owner": "data",
		},
	}
	state := stateWith(map[string]interface{}{"owner": "input"})
	state.NodeStates = map[string]interface{}{
		"fetch": map[string]interface{}{"status": "completed"},
	}

	result, err := renderer.Render(context.Background(), state, config)
	require.NoError(t, err)
	assert.Equal(t, "g-1 Report input wins status=completed;", result.Output)
}

func TestRenderHelpers(t *testing.T) {
	renderer := NewRenderer(true, zap.NewNop())
	config := &NodeConfig{
		Template: `{{#prioSort animals "name" prio}}{{name}} {{/prioSort}}`,
	}
	state := stateWith(map[string]interface{}{
		"animals": []interface{}{
			map[string]interface{}{"name": "cat"},
			map[string]interface{}{"name": "monkey"},
			map[string]interface{}{"name": "lion"},
		},
		"prio": []interface{}{"lion"},
	})

	result, err := renderer.Render(context.Background(), state, config)
	require.NoError(t, err)
	assert.Equal(t, "lion cat monkey ", result.Output)
}

func TestRenderErrors(t *testing.T) {
	renderer := NewRenderer(true, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name    string
		state   *State
		config  *NodeConfig
		wantErr string
	}{
		{"nil state", nil, greetingConfig(), "state is nil"},
		{"nil config", stateWith(nil), nil, "config is nil"},
		{"missing default", stateWith(nil), &NodeConfig{}, "default template is required"},
		{
			"variant without condition",
			stateWith(nil),
			&NodeConfig{Template: "x", Variants: []Variant{{Template: "y"}}},
			"variant 0: condition is required",
		},
		{
			"variant without template",
			stateWith(nil),
			&NodeConfig{Template: "x", Variants: []Variant{{Condition: "true"}}},
			"variant 0: template is required",
		},
		{
			"helper failure",
			stateWith(nil),
			&NodeConfig{Template: `{{#compare 1 "bogus" 2}}x{{/compare}}`},
			"failed to render template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := renderer.Render(ctx, tt.state, tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
