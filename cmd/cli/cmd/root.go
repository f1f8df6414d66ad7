// Package cmd provides the CLI commands for tfc-cost.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tfc-cost/internal/logging"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tfc-cost",
	Short: "Count Terraform Cloud resources and estimate their cost",
	Long: `tfc-cost talks to the Terraform Cloud API to count the managed
resources in every workspace of an organization and estimate their
recurring cost, and to read workspace state outputs.

Authentication uses the TFC_TOKEN environment variable; TFC_URL
overrides the API endpoint for Terraform Enterprise installs.

Examples:
  tfc-cost cost --org my-org
  tfc-cost cost --org my-org --format json
  tfc-cost outputs --org my-org --ws prod
  tfc-cost outputs --org my-org --ws prod --output vpc_id`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(outputsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initLogging() {
	cfg := logging.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	_ = logging.Initialize(cfg)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tfc-cost version 0.1.0")
	},
}
