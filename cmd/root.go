package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arcanaland/promptdeck/internal/config"
	"github.com/arcanaland/promptdeck/internal/deck"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "promptdeck",
	Short: "Timed prompt card game for the terminal",
	Long: `Promptdeck is a party game for the terminal. It draws random prompt cards from a
cards file and gives the players a countdown to act each one out.

A cards file has one card per line: the prompt, a '~', and the time limit in seconds.
Lines starting with '#' are comments and lines without a '~' are ignored.

  # warm up
  Do ten jumping jacks ~30
  Name three fruits ~10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		l, err := zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadCards resolves a cards name or path and parses it with the configured limits.
// An empty name selects the default cards from the config.
func loadCards(cfg *config.Config, name string) (*deck.Table, string, error) {
	if name == "" {
		name = cfg.DefaultCards
	}

	path, err := config.GetCardsPath(name)
	if err != nil {
		return nil, "", err
	}

	table, err := deck.LoadFile(path, parseOptions(cfg)...)
	if err != nil {
		return nil, "", err
	}

	logger.Debug("Loaded cards",
		zap.String("path", path),
		zap.Int("cards", table.Count()))

	return table, path, nil
}

func parseOptions(cfg *config.Config) []deck.Option {
	return []deck.Option{
		deck.WithLogger(logger),
		deck.WithMaxArenaSize(cfg.MaxArenaBytes),
		deck.WithStripCarriageReturns(cfg.StripCarriageReturns),
	}
}
