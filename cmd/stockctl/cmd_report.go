package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"stockroom/internal/app"
)

const dayLayout = "2006-01-02"

var (
	reportWarehouse string
	reportCompany   string
	reportDay       string
	reportExport    bool
)

// reportCmd prints or exports a daily report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print or export the daily report of a warehouse",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if reportWarehouse == "" {
			return errors.New("--warehouse is required")
		}
		if reportCompany == "" {
			return errors.New("--company is required")
		}
		day, err := parseDay(reportDay, time.Now())
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if reportExport {
				exp, err := a.Reports.ExportDailyReport(ctx, reportWarehouse, reportCompany, day)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), exp)
			}
			rep, err := a.Reports.GetDailyReport(ctx, reportWarehouse, reportCompany, day)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rep)
		})
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportWarehouse, "warehouse", "", "Warehouse ID")
	reportCmd.Flags().StringVar(&reportCompany, "company", "", "Company ID owning the warehouse")
	reportCmd.Flags().StringVar(&reportDay, "date", "", "Day as YYYY-MM-DD (default: today)")
	reportCmd.Flags().BoolVar(&reportExport, "export", false, "Upload to object storage and print a download link")
}

// parseDay reads a YYYY-MM-DD flag value; empty means the day of now.
func parseDay(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}
