package config

import (
	"os"
	"time"

	"github.com/spf13/viper"

	"voxpense/internal/capture"
	"voxpense/internal/export"
	"voxpense/internal/extract"
)

// DefaultDatabasePath is used when database.path is not configured.
const DefaultDatabasePath = "~/.local/share/voxpense/voxpense.db"

// DatabasePath returns the configured SQLite path with ~ and env vars
// expanded.
func DatabasePath() string {
	path := viper.GetString("database.path")
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}

// DefaultCurrency returns the fallback currency code used when a
// transcript carries no currency signal and the locale resolves nothing.
func DefaultCurrency() string {
	if code := viper.GetString("currency.default"); code != "" {
		return code
	}
	return "USD"
}

// Locale returns the configured BCP 47 locale, if any.
func Locale() string {
	return viper.GetString("currency.locale")
}

// LoadCaptureConfig reads the recording timing knobs. Zero values fall
// back to the capture package defaults.
func LoadCaptureConfig() capture.Config {
	return capture.Config{
		SilenceThreshold:  viper.GetDuration("capture.silence_threshold"),
		MinSpeechDuration: viper.GetDuration("capture.min_speech_duration"),
		TickInterval:      viper.GetDuration("capture.tick_interval"),
	}
}

// LoadWeights reads the confidence scoring weights, falling back to the
// defaults for any weight left unset.
func LoadWeights() extract.Weights {
	w := extract.DefaultWeights()
	if viper.IsSet("confidence.digits") {
		w.Digits = viper.GetFloat64("confidence.digits")
	}
	if viper.IsSet("confidence.category_keyword") {
		w.CategoryKeyword = viper.GetFloat64("confidence.category_keyword")
	}
	if viper.IsSet("confidence.action_verb") {
		w.ActionVerb = viper.GetFloat64("confidence.action_verb")
	}
	if viper.IsSet("confidence.merchant_preposition") {
		w.MerchantPreposition = viper.GetFloat64("confidence.merchant_preposition")
	}
	if viper.IsSet("confidence.currency_indicator") {
		w.CurrencyIndicator = viper.GetFloat64("confidence.currency_indicator")
	}
	return w
}

// LoadExportConfig loads Google Sheets export settings. Precedence:
// Viper configuration (config file or VOXPENSE_ env vars), then direct
// GOOGLE_SHEETS_* environment variables.
func LoadExportConfig() export.Config {
	cfg := export.Config{
		SpreadsheetID:      viper.GetString("sheets.spreadsheet_id"),
		SpreadsheetName:    viper.GetString("sheets.spreadsheet_name"),
		SheetName:          viper.GetString("sheets.sheet_name"),
		ServiceAccountPath: ExpandPath(viper.GetString("sheets.service_account_path")),
		OAuth: export.OAuthConfig{
			ClientID:     viper.GetString("sheets.client_id"),
			ClientSecret: viper.GetString("sheets.client_secret"),
			TokenFile:    ExpandPath(viper.GetString("sheets.token_file")),
		},
		RetryAttempts: viper.GetInt("sheets.retry_attempts"),
		RetryDelay:    viper.GetDuration("sheets.retry_delay"),
	}

	if cfg.ServiceAccountPath == "" {
		cfg.ServiceAccountPath = ExpandPath(os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"))
	}
	if cfg.OAuth.ClientID == "" {
		cfg.OAuth.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if cfg.OAuth.ClientSecret == "" {
		cfg.OAuth.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if cfg.OAuth.TokenFile == "" {
		cfg.OAuth.TokenFile = ExpandPath("~/.config/voxpense/sheets-token.json")
	}
	if cfg.SpreadsheetName == "" && cfg.SpreadsheetID == "" {
		cfg.SpreadsheetName = "Voxpense Expenses"
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	return cfg
}
