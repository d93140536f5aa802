package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/promptdeck/internal/config"
	"github.com/arcanaland/promptdeck/internal/deck"
)

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage cards files in your cards library",
	Long:  `Commands for managing cards files in your cards library.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available cards files in your cards library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetCardsLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Cards library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'promptdeck library init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading cards library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != config.CardsExtension {
				continue
			}

			name := strings.TrimSuffix(entry.Name(), config.CardsExtension)
			table, err := deck.LoadFile(filepath.Join(libraryPath, entry.Name()), parseOptions(cfg)...)
			if err != nil {
				// Not a valid cards file, skip
				logger.Debug("Skipping invalid cards file", zap.String("name", name), zap.Error(err))
				continue
			}
			count := table.Count()
			table.Release()

			found++
			if name == cfg.DefaultCards {
				fmt.Printf("* %s (%d cards) [DEFAULT]\n", name, count)
			} else {
				fmt.Printf("  %s (%d cards)\n", name, count)
			}
		}

		if found == 0 {
			fmt.Println("No cards files found in your cards library.")
			fmt.Println("You can add cards files by copying them to:", libraryPath)
		}

		return nil
	},
}

// librarySetDefaultCmd represents the library set-default command
var librarySetDefaultCmd = &cobra.Command{
	Use:   "set-default [cards_name]",
	Short: "Set the default cards file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		// Make sure it exists and parses before saving it
		table, _, err := loadCards(cfg, name)
		if err != nil {
			return fmt.Errorf("not a valid cards file: %w", err)
		}
		table.Release()

		if err := config.SetDefaultCards(name); err != nil {
			return fmt.Errorf("error setting default cards: %w", err)
		}

		fmt.Printf("Default cards set to: %s\n", name)
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the cards library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetCardsLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating cards library: %w", err)
		}

		fmt.Println("Cards library initialized at:", libraryPath)
		fmt.Println("You can now add cards files by copying them to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySetDefaultCmd)
	libraryCmd.AddCommand(libraryInitCmd)
}
