package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	outDir   string
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "charts",
	Short: "Render the numkit course charts as PNG files",
	Long: `charts renders the plotting-walkthrough figures of the numkit course:
line, bar, histogram and scatter charts over fixed course datasets, a sampled
binomial distribution against its normal approximation, and a stochastic
gradient-descent regression fit.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Setup logger
		var level slog.Level
		switch logLevel {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: level}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", ".", "Directory to write PNG files into")
}
