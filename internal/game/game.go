package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/arcanaland/promptdeck/internal/deck"
	"github.com/arcanaland/promptdeck/internal/termui"
)

const (
	// DefaultCountdown is the "get ready" countdown before each card
	DefaultCountdown = 4

	ruleWidth = 65
)

// Options configures a Game
type Options struct {
	In  io.Reader // Player input, one line per ENTER
	Out io.Writer

	// Interrupts delivers Ctrl+C presses. A nil channel disables them.
	Interrupts <-chan os.Signal

	Countdown    int           // Seconds of "get ready" before each card
	SecondLength time.Duration // Length of one countdown step
	Rand         func(n int) int
	Logger       *zap.Logger
	Color        bool
}

// Game runs the draw-and-countdown loop over a card table
type Game struct {
	table *deck.Table
	opts  Options

	prompt *color.Color
	quiet  *color.Color
}

// New creates a game over table, filling in defaults for unset options
func New(table *deck.Table, opts Options) *Game {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Countdown <= 0 {
		opts.Countdown = DefaultCountdown
	}
	if opts.SecondLength <= 0 {
		opts.SecondLength = time.Second
	}
	if opts.Rand == nil {
		opts.Rand = rand.IntN
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	g := &Game{
		table:  table,
		opts:   opts,
		prompt: color.New(color.Bold, color.Italic),
		quiet:  color.New(color.Faint),
	}
	if !opts.Color {
		g.prompt.DisableColor()
		g.quiet.DisableColor()
	}

	return g
}

// Draw picks a card index uniformly at random
func (g *Game) Draw() int {
	return g.opts.Rand(g.table.Count())
}

// Run plays rounds until the player quits, input ends or ctx is cancelled.
// Quitting and end of input return nil.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, g.opts.In)
	out := g.opts.Out

	fmt.Fprintln(out, "Welcome to The Game. Let's begin.")

	for {
		fmt.Fprintln(out, "\nPress ENTER when you are ready for a card.")

		quit, err := g.awaitEnter(ctx, lines)
		if quit || err != nil {
			return err
		}

		if err := g.playRound(ctx); err != nil {
			return err
		}
	}
}

func (g *Game) playRound(ctx context.Context) error {
	out := g.opts.Out

	index := g.Draw()
	c, err := g.table.Card(index)
	if err != nil {
		return fmt.Errorf("error drawing card: %w", err)
	}
	prompt, err := g.table.Prompt(index)
	if err != nil {
		return fmt.Errorf("error drawing card: %w", err)
	}

	g.opts.Logger.Debug("Drew card",
		zap.Int("index", index),
		zap.Int("seconds", c.Seconds))

	fmt.Fprintln(out, termui.Rule(ruleWidth))
	fmt.Fprintf(out, "You will have %d seconds to complete the following prompt:\n\n", c.Seconds)
	g.prompt.Fprintln(out, prompt)
	fmt.Fprintf(out, "%s\n\n\n", termui.Rule(ruleWidth))

	fmt.Fprintln(out, "Get ready...")
	if err := g.Countdown(ctx, g.opts.Countdown); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nGo!")
	if err := g.Countdown(ctx, c.Seconds); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nTIMER DONE!")
	return nil
}

// Countdown prints mm:ss once per step from seconds down to 00:00. An
// interrupt stops the timer early without ending the game. Interrupts queued
// before the timer starts are dropped.
func (g *Game) Countdown(ctx context.Context, seconds int) error {
	out := g.opts.Out
	g.dropInterrupts()
	g.quiet.Fprint(out, "Press Ctrl + C to stop the timer\n\n")

	ticker := time.NewTicker(g.opts.SecondLength)
	defer ticker.Stop()

	for remaining := seconds; remaining >= 0; remaining-- {
		fmt.Fprintln(out, termui.FormatClock(remaining))
		if remaining == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.opts.Interrupts:
			g.opts.Logger.Debug("Timer stopped", zap.Int("remaining", remaining))
			return nil
		case <-ticker.C:
		}
	}

	return nil
}

// awaitEnter waits for a line of input. An interrupt while waiting asks the
// player to confirm quitting.
func (g *Game) awaitEnter(ctx context.Context, lines <-chan string) (quit bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return true, ctx.Err()
		case _, ok := <-lines:
			return !ok, nil
		case <-g.opts.Interrupts:
			g.opts.Logger.Debug("Interrupted while waiting for player")
			if g.confirmQuit(ctx, lines) {
				return true, nil
			}
		}
	}
}

// confirmQuit asks whether to quit. Only an answer starting with 'y' quits.
// Interrupts arriving while the question is open are dropped.
func (g *Game) confirmQuit(ctx context.Context, lines <-chan string) bool {
	fmt.Fprint(g.opts.Out, "\nAre you sure you want to quit? (y/n) ")
	defer g.dropInterrupts()

	for {
		select {
		case <-ctx.Done():
			return true
		case <-g.opts.Interrupts:
			g.opts.Logger.Debug("Ignoring interrupt while asking to quit")
		case answer, ok := <-lines:
			if !ok {
				return true
			}
			return strings.HasPrefix(answer, "y")
		}
	}
}

// dropInterrupts discards interrupts already queued on the channel
func (g *Game) dropInterrupts() {
	for {
		select {
		case <-g.opts.Interrupts:
		default:
			return
		}
	}
}

// readLines forwards lines from r until EOF or ctx is done. The channel is
// closed when input ends.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
