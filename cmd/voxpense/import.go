package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"voxpense/internal/cli"
	"voxpense/internal/config"
)

func importCmd() *cobra.Command {
	var (
		filePath     string
		currencyFlag string
		localeFlag   string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Batch-import transcripts from a file",
		Long: `Read transcripts from a file, one per line, parse each through the
extraction pipeline and save the resulting expenses. Lines that fail to
parse are tallied and reported at the end.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(filePath) // #nosec G304
			if err != nil {
				return fmt.Errorf("failed to open transcript file: %w", err)
			}
			defer func() { _ = f.Close() }()

			var transcripts []string
			scanner := bufio.NewScanner(f)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				transcripts = append(transcripts, line)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read transcript file: %w", err)
			}
			if len(transcripts) == 0 {
				fmt.Println(cli.WarningStyle.Render("No transcripts found in file."))
				return nil
			}

			locale := localeFlag
			if locale == "" {
				locale = config.Locale()
			}
			defaultCurrency := currencyFlag
			if defaultCurrency == "" {
				defaultCurrency = config.DefaultCurrency()
			}

			pipeline := initPipeline()

			store, err := initStorage()
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.NewOptions(len(transcripts),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Importing transcripts...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
			)

			var saved, failed int
			for _, transcript := range transcripts {
				_ = bar.Add(1)

				expense, err := pipeline.Parse(transcript, locale, defaultCurrency)
				if err != nil {
					failed++
					slog.Warn("skipping transcript", "transcript", transcript, "error", err)
					continue
				}
				if dryRun {
					saved++
					continue
				}
				if err := store.SaveExpense(cmd.Context(), expense); err != nil {
					failed++
					slog.Warn("failed to save expense", "transcript", transcript, "error", err)
					continue
				}
				saved++
			}
			fmt.Println()

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %d imported", saved)))
			if failed > 0 {
				fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("✗ %d failed", failed)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "file with one transcript per line (required)")
	cmd.Flags().StringVar(&currencyFlag, "currency", "", "default currency code when none is spoken")
	cmd.Flags().StringVar(&localeFlag, "locale", "", "BCP 47 locale used for currency fallback")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse without saving")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
