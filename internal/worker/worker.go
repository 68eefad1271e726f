package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aescanero/dago-libs/pkg/ports"
	"github.com/aescanero/dago-node-template/internal/config"
	"github.com/aescanero/dago-node-template/internal/render"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Worker represents the template worker
type Worker struct {
	id            string
	config        *config.Config
	redisClient   *redis.Client
	renderer      *render.Renderer
	stateStore    ports.StateStorage
	logger        *zap.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	streamKey     string
	consumerGroup string
	resultStream  string
}

// NewWorker creates a new worker
func NewWorker(
	cfg *config.Config,
	redisClient *redis.Client,
	renderer *render.Renderer,
	stateStore ports.StateStorage,
	logger *zap.Logger,
) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		id:            cfg.WorkerID,
		config:        cfg,
		redisClient:   redisClient,
		renderer:      renderer,
		stateStore:    stateStore,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		streamKey:     cfg.StreamKey,
		consumerGroup: cfg.ConsumerGroup,
		resultStream:  cfg.ResultStream,
	}
}

// Start starts the worker
func (w *Worker) Start() error {
	w.logger.Info("starting template worker",
		zap.String("worker_id", w.id),
		zap.String("stream_key", w.streamKey),
		zap.String("consumer_group", w.consumerGroup),
	)

	// Create consumer group if it doesn't exist
	if err := w.ensureConsumerGroup(); err != nil {
		return fmt.Errorf("failed to ensure consumer group: %w", err)
	}

	// Start processing work
	go w.processWork()

	w.logger.Info("template worker started", zap.String("worker_id", w.id))
	return nil
}

// Stop stops the worker gracefully
func (w *Worker) Stop() error {
	w.logger.Info("stopping template worker", zap.String("worker_id", w.id))

	// Cancel context to stop work processing
	w.cancel()

	// Wait a bit for in-flight work to complete
	time.Sleep(2 * time.Second)

	w.logger.Info("template worker stopped", zap.String("worker_id", w.id))
	return nil
}

// ensureConsumerGroup creates the consumer group if it doesn't exist
func (w *Worker) ensureConsumerGroup() error {
	err := w.redisClient.XGroupCreateMkStream(w.ctx, w.streamKey, w.consumerGroup, "0").Err()
	if err != nil {
		// BUSYGROUP error means the group already exists, which is fine
		if err.Error() == "BUSYGROUP Consumer Group name already exists" {
			w.logger.Debug("consumer group already exists",
				zap.String("group", w.consumerGroup),
			)
			return nil
		}
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	w.logger.Info("created consumer group",
		zap.String("group", w.consumerGroup),
		zap.String("stream", w.streamKey),
	)
	return nil
}

// processWork processes work from the Redis stream
func (w *Worker) processWork() {
	w.logger.Info("starting work processing loop")

	for {
		select {
		case <-w.ctx.Done():
			w.logger.Info("work processing loop stopped")
			return
		default:
			streams, err := w.redisClient.XReadGroup(w.ctx, &redis.XReadGroupArgs{
				Group:    w.consumerGroup,
				Consumer: w.id,
				Streams:  []string{w.streamKey, ">"},
				Count:    1,
				Block:    w.config.BlockTime,
			}).Result()

			if err != nil {
				if err == redis.Nil || w.ctx.Err() != nil {
					continue
				}
				w.logger.Error("failed to read from stream",
					zap.Error(err),
				)
				time.Sleep(time.Second)
				continue
			}

			for _, stream := range streams {
				for _, message := range stream.Messages {
					w.handleMessage(message)
				}
			}
		}
	}
}

// handleMessage handles a single render request message
func (w *Worker) handleMessage(message redis.XMessage) {
	messageID := message.ID
	w.logger.Info("processing render request",
		zap.String("message_id", messageID),
	)

	// Parse the work request
	workRequest, err := parseWorkRequest(message.Values)
	if err != nil {
		w.logger.Error("failed to parse work request",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
		w.acknowledgeMessage(messageID)
		return
	}

	// Process the render request
	if err := w.processRenderRequest(workRequest); err != nil {
		w.logger.Error("failed to process render request",
			zap.String("message_id", messageID),
			zap.String("execution_id", workRequest.ExecutionID),
			zap.Error(err),
		)
		w.publishError(workRequest, err)
	}

	w.acknowledgeMessage(messageID)
}

// WorkRequest represents a render work request
type WorkRequest struct {
	ExecutionID string                 `json:"execution_id"`
	NodeID      string                 `json:"node_id"`
	Config      map[string]interface{} `json:"config"`
}

// parseWorkRequest parses a work request from a Redis message
func parseWorkRequest(values map[string]interface{}) (*WorkRequest, error) {
	dataStr, ok := values["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var request WorkRequest
	if err := json.Unmarshal([]byte(dataStr), &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal work request: %w", err)
	}

	if request.ExecutionID == "" {
		return nil, fmt.Errorf("execution_id is required")
	}

	return &request, nil
}

// processRenderRequest renders a request and publishes the result
func (w *Worker) processRenderRequest(request *WorkRequest) error {
	ctx, cancel := context.WithTimeout(w.ctx, w.config.RenderTimeout)
	defer cancel()

	result, err := w.renderRequest(ctx, request)
	if err != nil {
		return err
	}

	if err := w.publishResult(request, result); err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}

	return nil
}

// renderRequest loads the graph state and renders the node template
func (w *Worker) renderRequest(ctx context.Context, request *WorkRequest) (*render.Result, error) {
	// Load graph state from store
	stateData, err := w.stateStore.Load(ctx, request.ExecutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	// Convert state.State (map) to domain.GraphState
	graphState, err := convertToGraphState(request.ExecutionID, stateData)
	if err != nil {
		return nil, fmt.Errorf("failed to convert state: %w", err)
	}

	// Parse render configuration
	nodeConfig, err := parseNodeConfig(request.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse node config: %w", err)
	}

	result, err := w.renderer.Render(ctx, toRenderState(graphState), nodeConfig)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	return result, nil
}

// parseNodeConfig parses the node configuration into render.NodeConfig
func parseNodeConfig(config map[string]interface{}) (*render.NodeConfig, error) {
	// Marshal and unmarshal to convert map to struct
	data, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var nodeConfig render.NodeConfig
	if err := json.Unmarshal(data, &nodeConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &nodeConfig, nil
}

// resultEvent builds the event published for a successful render
func resultEvent(request *WorkRequest, result *render.Result) map[string]interface{} {
	return map[string]interface{}{
		"render_id":    uuid.NewString(),
		"execution_id": request.ExecutionID,
		"node_id":      request.NodeID,
		"output":       result.Output,
		"variant":      result.Variant,
		"path_taken":   result.PathTaken,
		"reasoning":    result.Reasoning,
		"timestamp":    time.Now().UTC(),
	}
}

// publishResult publishes the rendered output
func (w *Worker) publishResult(request *WorkRequest, result *render.Result) error {
	event := resultEvent(request, result)

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = w.redisClient.XAdd(w.ctx, &redis.XAddArgs{
		Stream: w.resultStream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	w.logger.Info("published render result",
		zap.String("render_id", event["render_id"].(string)),
		zap.String("execution_id", request.ExecutionID),
		zap.String("path", result.PathTaken),
	)

	return nil
}

// publishError publishes an error event
func (w *Worker) publishError(request *WorkRequest, err error) {
	errorEvent := map[string]interface{}{
		"execution_id": request.ExecutionID,
		"node_id":      request.NodeID,
		"error":        err.Error(),
		"timestamp":    time.Now().UTC(),
	}

	data, marshalErr := json.Marshal(errorEvent)
	if marshalErr != nil {
		w.logger.Error("failed to marshal error event", zap.Error(marshalErr))
		return
	}

	// Publish error to a separate stream
	_, publishErr := w.redisClient.XAdd(w.ctx, &redis.XAddArgs{
		Stream: w.config.ErrorStream(),
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()

	if publishErr != nil {
		w.logger.Error("failed to publish error event", zap.Error(publishErr))
	}
}

// acknowledgeMessage acknowledges a message from the stream
func (w *Worker) acknowledgeMessage(messageID string) {
	err := w.redisClient.XAck(w.ctx, w.streamKey, w.consumerGroup, messageID).Err()
	if err != nil {
		w.logger.Error("failed to acknowledge message",
			zap.String("message_id", messageID),
			zap.Error(err),
		)
	}
}
