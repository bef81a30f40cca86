package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"voxpense/internal/cli"
	"voxpense/internal/config"
	"voxpense/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		sheetID   string
		monthFlag string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to Google Sheets",
		Long: `Export stored expenses to a Google Sheets spreadsheet. Credentials come
from the sheets.* config section or GOOGLE_SHEETS_* environment
variables; the first run walks through an interactive OAuth2 flow.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var month time.Time
			if monthFlag != "" {
				var err error
				month, err = time.Parse("2006-01", monthFlag)
				if err != nil {
					return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", monthFlag, err)
				}
			}

			store, err := initStorage()
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := store.ListExpenses(cmd.Context(), month)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}
			if len(expenses) == 0 {
				fmt.Println(cli.WarningStyle.Render("Nothing to export."))
				return nil
			}

			cfg := config.LoadExportConfig()
			if sheetID != "" {
				cfg.SpreadsheetID = sheetID
			}

			exporter, err := export.NewExporter(cmd.Context(), cfg, slog.Default())
			if err != nil {
				return err
			}
			if err := exporter.Export(cmd.Context(), expenses); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ exported %d expenses", len(expenses))))
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetID, "sheet", "", "spreadsheet ID (overrides config)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "limit to a calendar month (YYYY-MM)")
	return cmd
}
