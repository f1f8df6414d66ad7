// Package outputs retrieves workspace state outputs.
package outputs

import (
	"context"
	"fmt"

	"tfc-cost/core/count"
	apperrors "tfc-cost/internal/errors"
	"tfc-cost/tfc"
)

// API is the client surface the retriever needs: show-by-name plus the
// paginated listing calls.
type API interface {
	count.Pager
	ShowWorkspace(ctx context.Context, org, name string) (*tfc.Workspace, error)
}

// OutputSet maps output names to their values for one state version
type OutputSet map[string]interface{}

// Lookup projects a single output by name. A miss is an output-not-found
// error, distinct from a workspace lookup miss.
func (s OutputSet) Lookup(name, workspaceName string) (interface{}, error) {
	value, ok := s[name]
	if !ok {
		return nil, apperrors.OutputNotFound(name, workspaceName)
	}
	return value, nil
}

// Retriever fetches the current state version outputs of a workspace
type Retriever struct {
	api API
}

// NewRetriever creates a Retriever backed by the given client
func NewRetriever(api API) *Retriever {
	return &Retriever{api: api}
}

// Get resolves workspaceName within org and returns its current state
// version outputs as a name-to-value map. The output listing follows the
// same opaque next-link rule as every other listing.
func (r *Retriever) Get(ctx context.Context, org, workspaceName string) (OutputSet, error) {
	ws, err := r.api.ShowWorkspace(ctx, org, workspaceName)
	if err != nil {
		return nil, err
	}

	resources, err := count.WalkAll(ctx, r.api, tfc.StateVersionOutputsPath(ws.ID))
	if err != nil {
		return nil, apperrors.Network(
			fmt.Sprintf("failed to fetch state outputs for workspace %s", workspaceName), err)
	}

	set := make(OutputSet, len(resources))
	for _, res := range resources {
		name, value, err := tfc.DecodeStateOutput(res)
		if err != nil {
			return nil, err
		}
		set[name] = value
	}
	return set, nil
}
