// Package cmd - cost command
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tfc-cost/core/cost"
	"tfc-cost/core/count"
	"tfc-cost/internal/config"
	apperrors "tfc-cost/internal/errors"
	"tfc-cost/internal/logging"
	"tfc-cost/tfc"
)

var (
	costOrg    string
	costURL    string
	costFormat string
)

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Estimate the monthly cost of all workspaces in an organization",
	Long: `Enumerate every workspace in a Terraform Cloud organization, count
its managed resources, and estimate the recurring cost.

Workspaces are listed in ascending resource-count order, followed by the
organization totals. A workspace whose resources cannot be counted is
reported on stderr and excluded from the totals.

Examples:
  tfc-cost cost --org my-org
  tfc-cost cost --org my-org --url https://tfe.example.com
  tfc-cost cost --org my-org --format json`,
	RunE: runCost,
}

func init() {
	costCmd.Flags().StringVarP(&costOrg, "org", "o", "", "Terraform Cloud organization")
	costCmd.Flags().StringVarP(&costURL, "url", "u", "", "Terraform Cloud URL (default from TFC_URL)")
	costCmd.Flags().StringVarP(&costFormat, "format", "f", "cli", "output format (cli, json)")
	_ = costCmd.MarkFlagRequired("org")
}

func runCost(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.FromEnv()
	if costURL != "" {
		cfg.URL = costURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := tfc.New(cfg)
	if err != nil {
		return err
	}

	logging.Info("listing workspaces", zap.String("organization", costOrg))

	resources, err := count.WalkAll(ctx, client, tfc.OrganizationWorkspacesPath(costOrg))
	if err != nil {
		return apperrors.WorkspaceListing(costOrg, err)
	}
	workspaces, err := tfc.DecodeWorkspaces(resources)
	if err != nil {
		return apperrors.WorkspaceListing(costOrg, err)
	}

	logging.Info("counting resources", zap.Int("workspaces", len(workspaces)))

	pipeline := cost.NewPipeline(count.NewCounter(client), os.Stderr)
	report := pipeline.Run(ctx, workspaces)

	if costFormat == "json" {
		return report.WriteJSON(os.Stdout)
	}
	return report.WriteText(os.Stdout)
}
