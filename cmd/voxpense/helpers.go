package main

import (
	"voxpense/internal/config"
	"voxpense/internal/currency"
	"voxpense/internal/extract"
	"voxpense/internal/storage"
)

// initStorage opens the SQLite ledger at the configured path.
func initStorage() (*storage.SQLiteStorage, error) {
	return storage.NewSQLiteStorage(config.DatabasePath())
}

// initPipeline builds the extraction pipeline with configured weights.
func initPipeline() *extract.Pipeline {
	return extract.NewPipeline(
		currency.DefaultRegistry(),
		extract.WithWeights(config.LoadWeights()),
	)
}
