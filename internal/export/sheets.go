package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"voxpense/internal/common"
	"voxpense/internal/model"
)

// Config holds settings for exporting expenses to Google Sheets.
type Config struct {
	SpreadsheetID      string
	SpreadsheetName    string
	SheetName          string
	ServiceAccountPath string
	OAuth              OAuthConfig
	RetryAttempts      int
	RetryDelay         time.Duration
}

// Validate checks the export configuration.
func (c *Config) Validate() error {
	if c.ServiceAccountPath == "" && c.OAuth.ClientID == "" {
		return fmt.Errorf("%w: either a service account key or OAuth2 client credentials are required", common.ErrMissingConfig)
	}
	if c.SpreadsheetID == "" && c.SpreadsheetName == "" {
		return fmt.Errorf("%w: a spreadsheet ID or name is required", common.ErrMissingConfig)
	}
	return nil
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.SheetName == "" {
		out.SheetName = "Expenses"
	}
	if out.RetryAttempts <= 0 {
		out.RetryAttempts = 3
	}
	if out.RetryDelay <= 0 {
		out.RetryDelay = time.Second
	}
	return out
}

// Exporter writes expense rows to a Google Sheets spreadsheet.
type Exporter struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewExporter creates an Exporter, authenticating against the Sheets API.
func NewExporter(ctx context.Context, config Config, logger *slog.Logger) (*Exporter, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid export config: %w", err)
	}
	config = config.withDefaults()

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Exporter{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Export writes the expenses to the configured sheet, replacing its contents.
func (e *Exporter) Export(ctx context.Context, expenses []model.Expense) error {
	e.logger.Info("starting export", "expenses", len(expenses), "sheet", e.config.SheetName)

	spreadsheetID, err := e.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	values := e.prepareRows(expenses)

	retryOpts := common.RetryOptions{
		MaxAttempts:  e.config.RetryAttempts,
		InitialDelay: e.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		if clearErr := e.clearSheet(ctx, spreadsheetID); clearErr != nil {
			return clearErr
		}
		return e.writeRows(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	e.logger.Info("export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))
	return nil
}

func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}
		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		token, err := GetOrCreateToken(ctx, config.OAuth)
		if err != nil {
			return nil, fmt.Errorf("oauth authentication failed: %w", err)
		}
		tokenSource = oauthClientConfig(config.OAuth).TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

func (e *Exporter) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if e.config.SpreadsheetID != "" {
		_, err := e.service.Spreadsheets.Get(e.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", e.config.SpreadsheetID, err)
		}
		return e.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: e.config.SpreadsheetName,
		},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: e.config.SheetName}},
		},
	}
	created, err := e.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}
	e.logger.Info("created spreadsheet", "spreadsheet_id", created.SpreadsheetId)
	return created.SpreadsheetId, nil
}

func (e *Exporter) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := e.service.Spreadsheets.Values.
		Clear(spreadsheetID, e.config.SheetName, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to clear sheet %s: %w", e.config.SheetName, err)
	}
	return nil
}

func (e *Exporter) writeRows(ctx context.Context, spreadsheetID string, values [][]any) error {
	valueRange := &sheets.ValueRange{Values: values}
	_, err := e.service.Spreadsheets.Values.
		Update(spreadsheetID, e.config.SheetName+"!A1", valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return &common.RetryableError{Err: fmt.Errorf("unable to write rows: %w", err), Retryable: true}
	}
	return nil
}

func (e *Exporter) prepareRows(expenses []model.Expense) [][]any {
	values := make([][]any, 0, len(expenses)+1)
	values = append(values, []any{
		"Date", "Amount", "Currency", "Category", "Merchant", "Notes", "Source", "Confidence",
	})
	for i := range expenses {
		exp := &expenses[i]
		confidence := ""
		if exp.ConfidenceScore != nil {
			confidence = fmt.Sprintf("%.2f", *exp.ConfidenceScore)
		}
		values = append(values, []any{
			exp.TransactionDate.Format("2006-01-02"),
			exp.Amount.String(),
			exp.Currency,
			string(exp.Category),
			exp.Merchant,
			exp.Notes,
			string(exp.Source),
			confidence,
		})
	}
	return values
}
