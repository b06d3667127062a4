package cmd

import (
	"time"

	"github.com/abhisek/learno/internal/config"
	"github.com/abhisek/learno/internal/console"
	"github.com/abhisek/learno/internal/logger"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play a lesson in the terminal",
	Long:  "Runs an interactive lesson against the in-process tutor, no HTTP server or frontend needed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()

		// The TUI owns the terminal; zap output would tear the frame.
		log := logger.Nop()

		b, err := buildBackend(cmd.Context(), cmd, cfg, log)
		if err != nil {
			return err
		}
		defer b.Close()

		return console.Run(console.Options{
			Tutor:        b.tutor,
			Catalog:      b.catalog,
			SilenceAfter: time.Duration(cfg.SilenceThreshold) * time.Second,
		})
	},
}
