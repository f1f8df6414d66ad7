package cost

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tfc-cost/internal/logging"
	"tfc-cost/tfc"
)

// ResourceCounter counts the managed resources of one workspace
type ResourceCounter interface {
	CountResources(ctx context.Context, workspaceID string) (int, error)
}

// Row is the per-workspace result of one pipeline run
type Row struct {
	WorkspaceName string
	WorkspaceID   string
	ResourceCount int
	MonthlyCost   decimal.Decimal
}

// Skipped records a workspace excluded from the report after a counting
// failure
type Skipped struct {
	WorkspaceName string
	WorkspaceID   string
	Err           error
}

// Report is the sorted per-workspace breakdown plus the rollup
type Report struct {
	Rows    []Row
	Rollup  Rollup
	Skipped []Skipped
}

// Pipeline runs resource counting across an organization's workspaces
// and aggregates the costs. Workspaces are processed sequentially.
type Pipeline struct {
	counter ResourceCounter
	errw    io.Writer
	log     *zap.Logger
}

// NewPipeline creates a Pipeline. errw is the user-visible error stream
// for per-workspace failures; nil means stderr.
func NewPipeline(counter ResourceCounter, errw io.Writer) *Pipeline {
	if errw == nil {
		errw = os.Stderr
	}
	return &Pipeline{
		counter: counter,
		errw:    errw,
		log:     logging.Logger,
	}
}

// Run counts resources for every workspace and builds the report. A
// counting failure excludes that workspace from rows and totals but
// never aborts the run; the failure is reported on the error stream.
// Rows are sorted ascending by resource count, ties keeping the
// listing order.
func (p *Pipeline) Run(ctx context.Context, workspaces []tfc.Workspace) *Report {
	rows := make([]Row, 0, len(workspaces))
	var skipped []Skipped

	for _, ws := range workspaces {
		resources, err := p.counter.CountResources(ctx, ws.ID)
		if err != nil {
			fmt.Fprintf(p.errw, "Error with workspace %s: %v\n", ws.Name, err)
			p.log.Warn("workspace skipped",
				zap.String("workspace", ws.Name),
				zap.String("workspace_id", ws.ID),
				zap.Error(err))
			skipped = append(skipped, Skipped{WorkspaceName: ws.Name, WorkspaceID: ws.ID, Err: err})
			continue
		}

		rows = append(rows, Row{
			WorkspaceName: ws.Name,
			WorkspaceID:   ws.ID,
			ResourceCount: resources,
			MonthlyCost:   MonthlyCost(resources),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ResourceCount < rows[j].ResourceCount
	})

	return &Report{
		Rows:    rows,
		Rollup:  Summarize(rows),
		Skipped: skipped,
	}
}
