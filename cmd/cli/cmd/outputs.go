// Package cmd - outputs command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfc-cost/core/outputs"
	"tfc-cost/internal/config"
	"tfc-cost/tfc"
)

var (
	outputsOrg  string
	outputsURL  string
	outputsWs   string
	outputsName string
)

// outputsCmd represents the outputs command
var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Get state outputs from a workspace",
	Long: `Fetch the current state version outputs of a Terraform Cloud
workspace.

Without --output the full output map is printed as indented JSON; with
--output only that output's value is printed.

Examples:
  tfc-cost outputs --org my-org --ws prod
  tfc-cost outputs --org my-org --ws prod --output vpc_id`,
	RunE: runOutputs,
}

func init() {
	outputsCmd.Flags().StringVar(&outputsOrg, "org", "", "Terraform Cloud organization")
	outputsCmd.Flags().StringVarP(&outputsURL, "url", "u", "", "Terraform Cloud URL (default from TFC_URL)")
	outputsCmd.Flags().StringVarP(&outputsWs, "ws", "w", "", "Terraform Cloud workspace")
	outputsCmd.Flags().StringVarP(&outputsName, "output", "o", "", "name of a single output to print")
	_ = outputsCmd.MarkFlagRequired("org")
	_ = outputsCmd.MarkFlagRequired("ws")
}

func runOutputs(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.FromEnv()
	if outputsURL != "" {
		cfg.URL = outputsURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := tfc.New(cfg)
	if err != nil {
		return err
	}

	set, err := outputs.NewRetriever(client).Get(ctx, outputsOrg, outputsWs)
	if err != nil {
		return err
	}

	if outputsName != "" {
		value, err := set.Lookup(outputsName, outputsWs)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")
	return enc.Encode(set)
}
