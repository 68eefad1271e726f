package render

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// selectTemplate returns the first variant whose condition holds, or the default template
func (r *Renderer) selectTemplate(ctx context.Context, state *State, config *NodeConfig) (*Result, string) {
	if !r.celEnabled || len(config.Variants) == 0 {
		return &Result{
			PathTaken: PathDefault,
			Reasoning: "no variants evaluated",
		}, config.Template
	}

	celState := r.prepareStateForCEL(state)

	// Evaluate variants in order
	for i, variant := range config.Variants {
		r.logger.Debug("evaluating variant",
			zap.Int("variant_index", i),
			zap.String("variant", variant.Name),
			zap.String("condition", variant.Condition),
		)

		matched, err := r.celEvaluator.EvaluateBool(ctx, variant.Condition, celState)
		if err != nil {
			r.logger.Warn("variant evaluation error",
				zap.Int("variant_index", i),
				zap.String("condition", variant.Condition),
				zap.Error(err),
			)
			// Continue to next variant on error
			continue
		}

		if matched {
			r.logger.Info("variant matched",
				zap.Int("variant_index", i),
				zap.String("variant", variant.Name),
				zap.String("condition", variant.Condition),
			)

			return &Result{
				Variant:   variant.Name,
				PathTaken: PathVariant,
				Reasoning: fmt.Sprintf("matched variant %d: %s", i, variant.Condition),
			}, variant.Template
		}
	}

	r.logger.Info("no variants matched, using default template",
		zap.String("graph_id", state.GraphID),
	)

	return &Result{
		PathTaken: PathDefault,
		Reasoning: "no variants matched",
	}, config.Template
}

// prepareStateForCEL converts State to a map for CEL evaluation
func (r *Renderer) prepareStateForCEL(state *State) map[string]interface{} {
	return map[string]interface{}{
		"state": stateObject(state),
	}
}

// templateData builds the template context: the state object, static data,
// then the inputs at top level. Later entries win.
func (r *Renderer) templateData(state *State, config *NodeConfig) map[string]interface{} {
	data := map[string]interface{}{
		"state": stateObject(state),
	}
	for k, v := range config.Data {
		data[k] = v
	}
	for k, v := range state.Inputs {
		data[k] = v
	}
	return data
}

func stateObject(state *State) map[string]interface{} {
	inputs := state.Inputs
	if inputs == nil {
		inputs = map[string]interface{}{}
	}
	nodeStates := state.NodeStates
	if nodeStates == nil {
		nodeStates = map[string]interface{}{}
	}
	return map[string]interface{}{
		"graph_id":    state.GraphID,
		"status":      state.Status,
		"inputs":      inputs,
		"node_states": nodeStates,
	}
}
