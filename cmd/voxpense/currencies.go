package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"voxpense/internal/cli"
	"voxpense/internal/config"
	"voxpense/internal/currency"
)

func currenciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currencies",
		Short: "Inspect the currency registry",
	}

	cmd.AddCommand(listCurrenciesCmd())
	cmd.AddCommand(detectCurrencyCmd())

	return cmd
}

func listCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported currencies",
		RunE: func(_ *cobra.Command, _ []string) error {
			registry := currency.DefaultRegistry()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Code"),
				headerStyle.Render("Symbol"),
				headerStyle.Render("Name"),
				headerStyle.Render("Keywords"))

			for _, entry := range registry.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					entry.Code,
					entry.Symbol,
					entry.DisplayName,
					strings.Join(entry.Keywords, ", "))
			}
			return nil
		},
	}
}

func detectCurrencyCmd() *cobra.Command {
	var localeFlag string

	cmd := &cobra.Command{
		Use:   "detect <text...>",
		Short: "Detect the currency mentioned in text",
		Long: `Run the currency detector on a piece of text and print the resolved
currency code along with the registry entry that matched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			locale := localeFlag
			if locale == "" {
				locale = config.Locale()
			}

			registry := currency.DefaultRegistry()
			detector := currency.NewDetector(registry)
			code := detector.Detect(text, locale, config.DefaultCurrency())

			entry, ok := registry.Lookup(code)
			if !ok {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("resolved %s (not in registry)", code)))
				return nil
			}
			fmt.Printf("%s %s (%s)\n",
				cli.AmountStyle.Render(entry.Code),
				entry.DisplayName,
				entry.Symbol)
			return nil
		},
	}

	cmd.Flags().StringVar(&localeFlag, "locale", "", "BCP 47 locale used for currency fallback")
	return cmd
}
