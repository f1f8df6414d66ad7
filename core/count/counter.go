package count

import (
	"context"

	apperrors "tfc-cost/internal/errors"
	"tfc-cost/tfc"
)

// Counter counts the managed resources of a workspace
type Counter struct {
	pager Pager
}

// NewCounter creates a Counter backed by the given pager
func NewCounter(p Pager) *Counter {
	return &Counter{pager: p}
}

// CountResources returns the number of managed resources in a workspace.
// Every call starts a fresh walk; nothing is cached between calls. Any
// failure, regardless of root cause, comes back as a single
// resource-counting error kind carrying the workspace ID.
func (c *Counter) CountResources(ctx context.Context, workspaceID string) (int, error) {
	total, err := Walk(ctx, c.pager, tfc.WorkspaceResourcesPath(workspaceID))
	if err != nil {
		return 0, apperrors.ResourceCounting(workspaceID, err)
	}
	return total, nil
}
