package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/arcanaland/promptdeck/internal/config"
	"github.com/arcanaland/promptdeck/internal/game"
	"github.com/arcanaland/promptdeck/internal/termui"
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play [cards_file]",
	Short: "Play a game with a cards file",
	Long: `Play draws a random card each time ENTER is pressed, counts down to the start and
then counts down the card's time limit.

Press Ctrl+C during a countdown to stop the timer. Press Ctrl+C while waiting for
a card to quit the game.

The cards file is looked up in your cards library (XDG_DATA_HOME/promptdeck/cards)
or used as a path. If none is given, the default cards from your config are used.

Examples:
  promptdeck play
  promptdeck play family
  promptdeck play ./office-party.cards --countdown 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		var name string
		if len(args) == 1 {
			name = args[0]
		}

		table, _, err := loadCards(cfg, name)
		if err != nil {
			return err
		}
		defer table.Release()

		countdown := cfg.CountdownSeconds
		if cmd.Flags().Changed("countdown") {
			countdown, _ = cmd.Flags().GetInt("countdown")
		}
		noColor, _ := cmd.Flags().GetBool("no-color")

		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)

		g := game.New(table, game.Options{
			In:         os.Stdin,
			Out:        os.Stdout,
			Interrupts: interrupts,
			Countdown:  countdown,
			Logger:     logger,
			Color:      cfg.Color && !noColor && termui.IsTerminal(os.Stdout),
		})

		return g.Run(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int("countdown", config.DefaultCountdownSeconds, "Seconds of \"get ready\" before each card")
	playCmd.Flags().Bool("no-color", false, "Disable coloured output")
}
