package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"voxpense/internal/cli"
	"voxpense/internal/config"
)

func parseCmd() *cobra.Command {
	var (
		currencyFlag string
		localeFlag   string
		saveFlag     bool
		jsonFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "parse <transcript...>",
		Short: "Parse a transcript into an expense",
		Long: `Run the extraction pipeline on a transcript and print the resulting
expense record.

Examples:
  voxpense parse "spent 50 dirhams on groceries at Carrefour"
  voxpense parse --currency EUR --save "paid 12.50 for lunch"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript := strings.Join(args, " ")

			locale := localeFlag
			if locale == "" {
				locale = config.Locale()
			}
			defaultCurrency := currencyFlag
			if defaultCurrency == "" {
				defaultCurrency = config.DefaultCurrency()
			}

			expense, err := initPipeline().Parse(transcript, locale, defaultCurrency)
			if err != nil {
				return fmt.Errorf("failed to parse transcript: %w", err)
			}

			if saveFlag {
				store, err := initStorage()
				if err != nil {
					return err
				}
				defer store.Close()

				if err := store.SaveExpense(cmd.Context(), expense); err != nil {
					return err
				}
			}

			if jsonFlag {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(expense)
			}

			fmt.Println(cli.RenderExpense(expense))
			if saveFlag {
				fmt.Println(cli.SuccessStyle.Render("✓ saved"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&currencyFlag, "currency", "", "default currency code when none is spoken")
	cmd.Flags().StringVar(&localeFlag, "locale", "", "BCP 47 locale used for currency fallback (e.g. en-AE)")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "persist the parsed expense")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "print the expense as JSON")

	return cmd
}
