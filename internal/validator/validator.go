package validator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/promptdeck/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Cards    int
}

type Validator struct {
	CardsPath string
	Options   []deck.Option
	Results   ValidationResults

	// line of the bad duration the parser stopped at, 0 if none
	parserErrorLine int
}

func NewValidator(cardsPath string, opts ...deck.Option) *Validator {
	return &Validator{
		CardsPath: cardsPath,
		Options:   opts,
		Results:   ValidationResults{},
	}
}

// Validate parses the cards file and lints each line. Problems with the file
// contents are reported in the results; the error is only for files that
// cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.CardsPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("cards file not found: %s", v.CardsPath)
	}

	if err := v.validateTable(); err != nil {
		return v.Results, err
	}

	if err := v.validateLines(); err != nil {
		return v.Results, err
	}

	return v.Results, nil
}

// validateTable runs the real parser over the file
func (v *Validator) validateTable() error {
	file, err := os.Open(v.CardsPath)
	if err != nil {
		return fmt.Errorf("error opening cards file: %w", err)
	}
	defer file.Close()

	table, err := deck.Parse(file, v.Options...)
	if err != nil {
		var ioErr *deck.IOError
		if errors.As(err, &ioErr) {
			return err
		}
		var durErr *deck.InvalidDurationError
		if errors.As(err, &durErr) {
			v.parserErrorLine = durErr.Line
		}
		v.Results.Errors = append(v.Results.Errors, err.Error())
		return nil
	}
	defer table.Release()

	v.Results.Cards = table.Count()
	return nil
}

// validateLines reports lines the parser silently drops or trims, and every
// bad time after the first one the parser stopped at
func (v *Validator) validateLines() error {
	file, err := os.Open(v.CardsPath)
	if err != nil {
		return fmt.Errorf("error opening cards file: %w", err)
	}
	defer file.Close()

	// bufio.Scanner would drop a trailing '\r', which is worth reporting
	reader := bufio.NewReader(file)

	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNo++
			v.validateLine(lineNo, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading cards file: %w", err)
		}
	}
}

func (v *Validator) validateLine(lineNo int, line string) {
	if strings.HasPrefix(line, string(deck.CommentMarker)) {
		return
	}

	if strings.ContainsRune(line, '\r') {
		v.warn(lineNo, "contains a carriage return (Windows line endings?)")
	}

	prompt, field, found := strings.Cut(line, string(deck.Delimiter))
	if !found {
		if strings.TrimSpace(line) != "" {
			v.warn(lineNo, "no '~' time field, line ignored")
		}
		return
	}

	// The parser trims a single blank before the delimiter
	if n := len(prompt); n > 0 && (prompt[n-1] == ' ' || prompt[n-1] == '\t') {
		prompt = prompt[:n-1]
	}
	if prompt == "" {
		v.warn(lineNo, "empty prompt, line ignored")
		return
	}
	if strings.TrimSpace(prompt) == "" {
		v.warn(lineNo, "prompt is only whitespace")
	}

	if strings.ContainsRune(field, deck.Delimiter) {
		v.warn(lineNo, "more than one '~', time is read after the last one")
		field = field[strings.LastIndexByte(field, deck.Delimiter)+1:]
	}

	_, rest, err := deck.ParseSeconds(field)
	if err != nil {
		// The parser stops at the first bad time; report the rest here
		if lineNo != v.parserErrorLine {
			durErr := &deck.InvalidDurationError{Line: lineNo, Prompt: prompt, Field: field}
			v.Results.Errors = append(v.Results.Errors, durErr.Error())
		}
		return
	}

	if strings.TrimSpace(rest) != "" {
		v.warn(lineNo, fmt.Sprintf("text after the time is ignored: %q", strings.TrimSpace(rest)))
	}

	if strings.HasPrefix(strings.TrimSpace(field), "-") {
		v.warn(lineNo, "negative time is treated as positive")
	}
}

func (v *Validator) warn(lineNo int, msg string) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("line %d: %s", lineNo, msg))
}
