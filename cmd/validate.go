package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/promptdeck/internal/config"
	"github.com/arcanaland/promptdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [cards_file]",
	Short: "Validate a cards file",
	Long: `Validate parses a cards file the same way play does and reports every problem
that would stop the game, plus warnings for lines that are silently ignored or trimmed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		name := cfg.DefaultCards
		if len(args) == 1 {
			name = args[0]
		}

		cardsPath, err := config.GetCardsPath(name)
		if err != nil {
			return err
		}

		v := validator.NewValidator(cardsPath, parseOptions(cfg)...)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			colorize.Green("✅ '%s' is valid: %d cards.", cardsPath, results.Cards)
		} else {
			colorize.Red("❌ '%s' has %d errors:", cardsPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println()
			colorize.Yellow("Warnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
