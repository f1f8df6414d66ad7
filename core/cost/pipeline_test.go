package cost

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "tfc-cost/internal/errors"
	"tfc-cost/tfc"
)

// fakeCounter returns canned counts per workspace ID
type fakeCounter struct {
	counts map[string]int
	fail   map[string]bool
}

func (f *fakeCounter) CountResources(ctx context.Context, workspaceID string) (int, error) {
	if f.fail[workspaceID] {
		return 0, apperrors.ResourceCounting(workspaceID, context.DeadlineExceeded)
	}
	return f.counts[workspaceID], nil
}

func workspaces(pairs ...string) []tfc.Workspace {
	ws := make([]tfc.Workspace, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		ws = append(ws, tfc.Workspace{Name: pairs[i], ID: pairs[i+1]})
	}
	return ws
}

func TestPipelineSortsAscendingByCount(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"ws-1": 30, "ws-2": 10, "ws-3": 20,
	}}
	pipeline := NewPipeline(counter, &bytes.Buffer{})

	report := pipeline.Run(context.Background(), workspaces(
		"alpha", "ws-1", "beta", "ws-2", "gamma", "ws-3"))

	wantOrder := []string{"beta", "gamma", "alpha"}
	for i, name := range wantOrder {
		if report.Rows[i].WorkspaceName != name {
			t.Errorf("row %d: expected %s, got %s", i, name, report.Rows[i].WorkspaceName)
		}
	}
}

func TestPipelineSortIsStable(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"ws-1": 5, "ws-2": 5, "ws-3": 5,
	}}
	pipeline := NewPipeline(counter, &bytes.Buffer{})

	report := pipeline.Run(context.Background(), workspaces(
		"first", "ws-1", "second", "ws-2", "third", "ws-3"))

	wantOrder := []string{"first", "second", "third"}
	for i, name := range wantOrder {
		if report.Rows[i].WorkspaceName != name {
			t.Errorf("tied rows reordered: row %d is %s, expected %s",
				i, report.Rows[i].WorkspaceName, name)
		}
	}
}

func TestPipelinePartialFailureIsolation(t *testing.T) {
	counter := &fakeCounter{
		counts: map[string]int{"ws-a": 100, "ws-c": 200},
		fail:   map[string]bool{"ws-b": true},
	}
	var errw bytes.Buffer
	pipeline := NewPipeline(counter, &errw)

	report := pipeline.Run(context.Background(), workspaces(
		"a", "ws-a", "b", "ws-b", "c", "ws-c"))

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}
	for _, row := range report.Rows {
		if row.WorkspaceID == "ws-b" {
			t.Error("failed workspace must not appear in rows")
		}
	}
	if report.Rollup.TotalResources != 300 {
		t.Errorf("totals must exclude the failed workspace, got %d resources",
			report.Rollup.TotalResources)
	}
	if got := report.Rollup.TotalMonthlyCost.String(); got != "1.008" {
		t.Errorf("expected monthly total 1.008, got %s", got)
	}
	if got := report.Rollup.TotalYearlyCost.String(); got != "12.096" {
		t.Errorf("expected yearly total 12.096, got %s", got)
	}

	if len(report.Skipped) != 1 || report.Skipped[0].WorkspaceID != "ws-b" {
		t.Errorf("expected ws-b in skipped list, got %+v", report.Skipped)
	}
	if !strings.Contains(errw.String(), "Error with workspace b:") {
		t.Errorf("failure not reported on error stream: %q", errw.String())
	}
}

func TestPipelineIdempotent(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"ws-1": 12, "ws-2": 7, "ws-3": 40,
	}}
	pipeline := NewPipeline(counter, &bytes.Buffer{})
	ws := workspaces("alpha", "ws-1", "beta", "ws-2", "gamma", "ws-3")

	var first, second bytes.Buffer
	if err := pipeline.Run(context.Background(), ws).WriteText(&first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := pipeline.Run(context.Background(), ws).WriteText(&second); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("two runs over unchanged input diverged:\n%s\nvs\n%s",
			first.String(), second.String())
	}
}

func TestReportWriteText(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{
		"ws-a": 100, "ws-c": 200,
	}}
	pipeline := NewPipeline(counter, &bytes.Buffer{})

	report := pipeline.Run(context.Background(), workspaces("a", "ws-a", "c", "ws-c"))

	var out bytes.Buffer
	if err := report.WriteText(&out); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	want := "Workspace: a (ws-a - 100 resources) - Monthly Cost: $0.336\n" +
		"Workspace: c (ws-c - 200 resources) - Monthly Cost: $0.672\n" +
		"Total Resources: 300\n" +
		"Total Monthly Cost: $1.008\n" +
		"Total Yearly Cost: $12.096\n"
	if out.String() != want {
		t.Errorf("unexpected report:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestReportWriteJSON(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int{"ws-a": 100}}
	pipeline := NewPipeline(counter, &bytes.Buffer{})

	report := pipeline.Run(context.Background(), workspaces("a", "ws-a"))

	var out bytes.Buffer
	if err := report.WriteJSON(&out); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	for _, fragment := range []string{
		`"workspace_name": "a"`,
		`"resource_count": 100`,
		`"monthly_cost": "0.336"`,
		`"total_yearly_cost": "4.032"`,
	} {
		if !strings.Contains(out.String(), fragment) {
			t.Errorf("JSON report missing %s:\n%s", fragment, out.String())
		}
	}
}
