package tfc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	apperrors "tfc-cost/internal/errors"
)

// OrganizationWorkspacesPath lists all workspaces in an organization
func OrganizationWorkspacesPath(org string) string {
	return fmt.Sprintf("/organizations/%s/workspaces", url.PathEscape(org))
}

// WorkspacePath shows a single workspace by name
func WorkspacePath(org, name string) string {
	return fmt.Sprintf("/organizations/%s/workspaces/%s", url.PathEscape(org), url.PathEscape(name))
}

// WorkspaceResourcesPath lists the managed resources of a workspace.
// The listing is cursor-paginated via links.next.
func WorkspaceResourcesPath(workspaceID string) string {
	return fmt.Sprintf("/workspaces/%s/resources", url.PathEscape(workspaceID))
}

// StateVersionOutputsPath lists the outputs of a workspace's current
// state version.
func StateVersionOutputsPath(workspaceID string) string {
	return fmt.Sprintf("/workspaces/%s/current-state-version-outputs", url.PathEscape(workspaceID))
}

// ShowWorkspace resolves a workspace name to its workspace within an
// organization. A 404 or empty payload maps to WorkspaceNotFound.
func (c *Client) ShowWorkspace(ctx context.Context, org, name string) (*Workspace, error) {
	doc, err := c.Get(ctx, WorkspacePath(org, name))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.WorkspaceNotFound(org, name)
		}
		return nil, fmt.Errorf("failed to show workspace %s: %w", name, err)
	}
	if len(doc.Data) == 0 {
		return nil, apperrors.WorkspaceNotFound(org, name)
	}

	ws, err := DecodeWorkspace(doc.Data[0])
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// DecodeWorkspace extracts the workspace ID and name from a resource
// object.
func DecodeWorkspace(res Resource) (Workspace, error) {
	var attrs workspaceAttributes
	if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
		return Workspace{}, apperrors.Parsing("failed to decode workspace attributes", err)
	}
	return Workspace{ID: res.ID, Name: attrs.Name}, nil
}

// DecodeWorkspaces decodes a full listing, preserving server order
func DecodeWorkspaces(resources []Resource) ([]Workspace, error) {
	workspaces := make([]Workspace, 0, len(resources))
	for _, res := range resources {
		ws, err := DecodeWorkspace(res)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}

// DecodeStateOutput extracts the name and value of a state version
// output resource.
func DecodeStateOutput(res Resource) (string, interface{}, error) {
	var attrs stateOutputAttributes
	if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
		return "", nil, apperrors.Parsing("failed to decode state output attributes", err)
	}
	return attrs.Name, attrs.Value, nil
}
