package worker

import (
	"encoding/json"
	"fmt"

	"github.com/aescanero/dago-libs/pkg/domain"
	"github.com/aescanero/dago-node-template/internal/render"
)

// convertToGraphState converts state.State to domain.GraphState
func convertToGraphState(graphID string, stateData map[string]interface{}) (*domain.GraphState, error) {
	// Marshal the state data to JSON then unmarshal to GraphState
	data, err := json.Marshal(stateData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	var graphState domain.GraphState
	if err := json.Unmarshal(data, &graphState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal to GraphState: %w", err)
	}

	// Ensure GraphID is set
	if graphState.GraphID == "" {
		graphState.GraphID = graphID
	}

	return &graphState, nil
}

// toRenderState converts a GraphState to the renderer's view of it
func toRenderState(graphState *domain.GraphState) *render.State {
	return &render.State{
		GraphID:    graphState.GraphID,
		Status:     string(graphState.Status),
		Inputs:     inputsOf(graphState.Inputs),
		NodeStates: convertNodeStates(graphState.NodeStates),
	}
}

// inputsOf returns graph inputs as a plain map
func inputsOf(inputs interface{}) map[string]interface{} {
	switch in := inputs.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return in
	}

	data, err := json.Marshal(inputs)
	if err != nil {
		return nil
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

// convertNodeStates converts node states to a template friendly format
func convertNodeStates(nodeStates map[string]*domain.NodeState) map[string]interface{} {
	result := make(map[string]interface{}, len(nodeStates))
	for nodeID, nodeState := range nodeStates {
		if nodeState == nil {
			continue
		}
		result[nodeID] = map[string]interface{}{
			"status":       string(nodeState.Status),
			"output":       nodeState.Output,
			"error":        nodeState.Error,
			"started_at":   nodeState.StartedAt,
			"completed_at": nodeState.CompletedAt,
		}
	}
	return result
}
