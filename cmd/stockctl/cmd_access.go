package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stockroom/internal/app"
)

var (
	invalidateUser      string
	invalidateCompany   string
	invalidateWarehouse string
)

// invalidateCmd drops cached access decisions after grants change outside the API.
var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "Drop cached access decisions of a user",
	Long: `Drop cached access decisions of a user. With --warehouse and --company
only that pair is dropped; otherwise every decision of the user is.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if invalidateUser == "" {
			return errors.New("--user is required")
		}
		if invalidateWarehouse != "" && invalidateCompany == "" {
			return errors.New("--company is required with --warehouse")
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if invalidateWarehouse != "" {
				if err := a.Access.InvalidateAccess(ctx, invalidateUser, invalidateCompany, invalidateWarehouse); err != nil {
					return err
				}
			} else if err := a.Access.InvalidateUser(ctx, invalidateUser); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "invalidated")
			return err
		})
	},
}

func init() {
	invalidateCmd.Flags().StringVar(&invalidateUser, "user", "", "User ID")
	invalidateCmd.Flags().StringVar(&invalidateCompany, "company", "", "Company ID")
	invalidateCmd.Flags().StringVar(&invalidateWarehouse, "warehouse", "", "Warehouse ID")
}
