package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"voxpense/internal/cli"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Inspect the expense ledger",
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored expenses",
		Long:  `Display stored expenses, newest first, optionally limited to a month.`,
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
				fmt.Println(cli.SubtleStyle.Render("No expenses found. Use 'voxpense parse --save' or 'voxpense listen' to log one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Date"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Category"),
				headerStyle.Render("Merchant"),
				headerStyle.Render("ID"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 10),
				strings.Repeat("-", 12),
				strings.Repeat("-", 18),
				strings.Repeat("-", 20),
				strings.Repeat("-", 8))

			total := make(map[string]decimal.Decimal)
			for i := range expenses {
				exp := &expenses[i]
				merchant := exp.Merchant
				if merchant == "" {
					merchant = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(none)")
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
					exp.TransactionDate.Format("2006-01-02"),
					exp.Currency,
					exp.Amount.StringFixed(2),
					exp.Category,
					merchant,
					shortID(exp.ID))
				total[exp.Currency] = total[exp.Currency].Add(exp.Amount)
			}
			_ = w.Flush()

			fmt.Println()
			for code, sum := range total {
				fmt.Println(cli.AmountStyle.Render(fmt.Sprintf("Total %s %s", code, sum.StringFixed(2))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "limit to a calendar month (YYYY-MM)")
	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStorage()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteExpense(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.SuccessStyle.Render("✓ deleted"))
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
