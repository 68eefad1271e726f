package render

import (
	"context"
	"fmt"

	"github.com/aescanero/dago-node-template/internal/eval/cel"
	"github.com/aescanero/dago-node-template/internal/eval/template"
	"go.uber.org/zap"
)

const (
	// PathVariant marks a result rendered from a matching variant
	PathVariant = "variant"

	// PathDefault marks a result rendered from the default template
	PathDefault = "default"
)

// NodeConfig represents the render configuration for a node
type NodeConfig struct {
	Template string                 `json:"template"`
	Variants []Variant              `json:"variants,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

// Variant is a template used instead of the default when its CEL condition holds
type Variant struct {
	Name      string `json:"name,omitempty"`
	Condition string `json:"condition"`
	Template  string `json:"template"`
}

// State is the graph state a template is rendered against
type State struct {
	GraphID    string
	Status     string
	Inputs     map[string]interface{}
	NodeStates map[string]interface{}
}

// Result represents the outcome of a render
type Result struct {
	Output    string `json:"output"`
	Variant   string `json:"variant,omitempty"`
	PathTaken string `json:"path_taken"` // "variant", "default"
	Reasoning string `json:"reasoning"`
}

// Renderer selects and renders node templates
type Renderer struct {
	celEvaluator   *cel.Evaluator
	templateEngine *template.Engine
	celEnabled     bool
	logger         *zap.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(celEnabled bool, logger *zap.Logger) *Renderer {
	return &Renderer{
		celEvaluator:   cel.NewEvaluator(),
		templateEngine: template.NewEngine(),
		celEnabled:     celEnabled,
		logger:         logger,
	}
}

// Engine returns the template engine used by the renderer
func (r *Renderer) Engine() *template.Engine {
	return r.templateEngine
}

// Render selects a template for the state and renders it
func (r *Renderer) Render(ctx context.Context, state *State, config *NodeConfig) (*Result, error) {
	if state == nil {
		return nil, fmt.Errorf("state is nil")
	}

	r.logger.Info("render request",
		zap.String("graph_id", state.GraphID),
		zap.Int("variants", len(config.GetVariants())),
	)

	// Validate configuration
	if err := r.validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Pick the template
	result, source := r.selectTemplate(ctx, state, config)

	// Render it
	output, err := r.templateEngine.Render(source, r.templateData(state, config))
	if err != nil {
		r.logger.Error("render failed",
			zap.String("graph_id", state.GraphID),
			zap.String("path", result.PathTaken),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	result.Output = output

	r.logger.Info("render complete",
		zap.String("graph_id", state.GraphID),
		zap.String("path", result.PathTaken),
		zap.String("variant", result.Variant),
		zap.Int("output_bytes", len(output)),
	)

	return result, nil
}

// GetVariants returns the configured variants, tolerating a nil config
func (c *NodeConfig) GetVariants() []Variant {
	if c == nil {
		return nil
	}
	return c.Variants
}

// validateConfig validates the render configuration
func (r *Renderer) validateConfig(config *NodeConfig) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	if config.Template == "" {
		return fmt.Errorf("default template is required")
	}

	for i, variant := range config.Variants {
		if variant.Condition == "" {
			return fmt.Errorf("variant %d: condition is required", i)
		}
		if variant.Template == "" {
			return fmt.Errorf("variant %d: template is required", i)
		}
	}

	return nil
}
