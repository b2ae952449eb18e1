package main

import (
	"context"
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"stockroom/internal/app"
	"stockroom/internal/service"
)

var (
	crowdedCompany   string
	crowdedThreshold float64
)

// crowdedCmd lists shelves filled to at least the threshold.
var crowdedCmd = &cobra.Command{
	Use:   "crowded",
	Short: "List crowded shelves of a company",
	Long: `List every shelf of the company whose occupied share of space is at
least --threshold. A threshold of 0 uses the service default.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if crowdedCompany == "" {
			return errors.New("--company is required")
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			seq, err := a.Storages.CheckCrowdedShelves(ctx, crowdedCompany, crowdedThreshold)
			if err != nil {
				return err
			}
			shelves := slices.Collect(seq)
			if shelves == nil {
				shelves = []service.CrowdedShelf{}
			}
			return printJSON(cmd.OutOrStdout(), shelves)
		})
	},
}

func init() {
	crowdedCmd.Flags().StringVar(&crowdedCompany, "company", "", "Company ID")
	crowdedCmd.Flags().Float64Var(&crowdedThreshold, "threshold", 0, "Fill ratio in (0, 1]")
}
