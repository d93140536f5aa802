package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/promptdeck/internal/config"
	"github.com/arcanaland/promptdeck/internal/deck"
	"github.com/arcanaland/promptdeck/internal/termui"
)

var showCmd = &cobra.Command{
	Use:   "show [cards_file] [index]",
	Short: "List the cards in a cards file",
	Long: `Show lists every card of a cards file with its time limit, in file order.
Give a card index to show just that card.

Examples:
  promptdeck show
  promptdeck show family
  promptdeck show family 3`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		var name string
		if len(args) >= 1 {
			name = args[0]
		}

		table, cardsPath, err := loadCards(cfg, name)
		if err != nil {
			return err
		}
		defer table.Release()

		if !cfg.Color || !termui.IsTerminal(os.Stdout) {
			colorize.NoColor = true
		}

		if len(args) == 2 {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid card index: %s", args[1])
			}
			return displayCard(table, index)
		}

		fmt.Println(colorize.CyanString("Cards: ") + colorize.HiWhiteString("%s (%d)", cardsPath, table.Count()))
		fmt.Println()
		return listCards(table, termui.Width(os.Stdout))
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// listCards prints one wrapped entry per card
func listCards(table *deck.Table, width int) error {
	indexWidth := len(strconv.Itoa(table.Count() - 1))
	// index, two spaces, mm:ss, two spaces
	indent := indexWidth + 2 + 5 + 2

	for i := 0; i < table.Count(); i++ {
		prompt, err := table.Prompt(i)
		if err != nil {
			return err
		}
		seconds, err := table.Seconds(i)
		if err != nil {
			return err
		}

		lines := termui.WrapText(prompt, width-indent)
		fmt.Printf("%*d  %s  %s\n", indexWidth, i,
			colorize.CyanString(termui.FormatClock(seconds)), lines[0])
		for _, line := range lines[1:] {
			fmt.Println(strings.Repeat(" ", indent) + line)
		}
	}

	return nil
}

// displayCard prints a single card the way the game presents it
func displayCard(table *deck.Table, index int) error {
	prompt, err := table.Prompt(index)
	if err != nil {
		return fmt.Errorf("error getting card %d: %w", index, err)
	}
	c, err := table.Card(index)
	if err != nil {
		return fmt.Errorf("error getting card %d: %w", index, err)
	}

	fmt.Println(colorize.CyanString("Card: ") + colorize.HiWhiteString("%d of %d", index, table.Count()))
	fmt.Println(colorize.CyanString("Time: ") + colorize.HiWhiteString("%s (%s)", termui.FormatClock(c.Seconds), c.Duration()))
	fmt.Println()
	colorize.New(colorize.Bold, colorize.Italic).Println(prompt)

	return nil
}
