package cost

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteText renders the report in the one-line-per-workspace format
func (r *Report) WriteText(w io.Writer) error {
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "Workspace: %s (%s - %d resources) - Monthly Cost: $%s\n",
			row.WorkspaceName, row.WorkspaceID, row.ResourceCount, row.MonthlyCost.String()); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Total Resources: %d\n", r.Rollup.TotalResources); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total Monthly Cost: $%s\n", r.Rollup.TotalMonthlyCost.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total Yearly Cost: $%s\n", r.Rollup.TotalYearlyCost.String())
	return err
}

type jsonRow struct {
	WorkspaceName string `json:"workspace_name"`
	WorkspaceID   string `json:"workspace_id"`
	ResourceCount int    `json:"resource_count"`
	MonthlyCost   string `json:"monthly_cost"`
}

type jsonReport struct {
	Workspaces       []jsonRow `json:"workspaces"`
	TotalResources   int       `json:"total_resources"`
	TotalMonthlyCost string    `json:"total_monthly_cost"`
	TotalYearlyCost  string    `json:"total_yearly_cost"`
}

// WriteJSON renders the report as indented JSON. Cost figures are
// emitted as strings to keep the four-place rounding exact on the wire.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		Workspaces:       make([]jsonRow, 0, len(r.Rows)),
		TotalResources:   r.Rollup.TotalResources,
		TotalMonthlyCost: r.Rollup.TotalMonthlyCost.String(),
		TotalYearlyCost:  r.Rollup.TotalYearlyCost.String(),
	}
	for _, row := range r.Rows {
		out.Workspaces = append(out.Workspaces, jsonRow{
			WorkspaceName: row.WorkspaceName,
			WorkspaceID:   row.WorkspaceID,
			ResourceCount: row.ResourceCount,
			MonthlyCost:   row.MonthlyCost.String(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
