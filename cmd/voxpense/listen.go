package main

import (
	"github.com/spf13/cobra"

	"voxpense/internal/capture"
	"voxpense/internal/config"
	"voxpense/internal/tui"
)

func listenCmd() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Interactive capture session",
		Long: `Start an interactive recording session. Typed phrases stand in for
recognized speech: each entered phrase is delivered to the recording
state machine as a partial transcript, and the session auto-stops after
the configured silence window. The finished transcript is parsed into an
expense which can be saved to the ledger.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			engine := capture.NewManualEngine()
			controller := capture.NewController(engine, capture.SystemClock{}, config.LoadCaptureConfig())

			cfg := tui.Config{
				Controller:      controller,
				Engine:          engine,
				Pipeline:        initPipeline(),
				Locale:          config.Locale(),
				DefaultCurrency: config.DefaultCurrency(),
			}

			if !noSave {
				store, err := initStorage()
				if err != nil {
					return err
				}
				defer store.Close()
				cfg.Saver = store
			}

			return tui.Run(cfg)
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not offer saving parsed expenses")
	return cmd
}
