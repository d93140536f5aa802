package deck

import (
	"github.com/arcanaland/promptdeck/internal/card"
)

// Table holds the cards parsed from one file. Prompts are packed into a
// single arena at a fixed stride, one slot per card, so any prompt can be
// looked up by card index without further allocation.
//
// A Table is never modified after Parse returns and may be read from
// several goroutines at once. Release must not race with readers.
type Table struct {
	records []card.Card
	arena   []byte
	stride  int
}

// Count returns the number of cards in the table
func (t *Table) Count() int {
	return len(t.records)
}

// Stride returns the width in bytes of one prompt slot
func (t *Table) Stride() int {
	return t.stride
}

// Card returns the card record at index i
func (t *Table) Card(i int) (card.Card, error) {
	if t.records == nil {
		return card.Card{}, ErrReleased
	}
	if i < 0 || i >= len(t.records) {
		return card.Card{}, ErrIndexOutOfRange
	}
	return t.records[i], nil
}

// Prompt returns the prompt text of the card at index i
func (t *Table) Prompt(i int) (string, error) {
	c, err := t.Card(i)
	if err != nil {
		return "", err
	}

	end := c.PromptOffset + t.stride
	if c.PromptOffset < 0 || end > len(t.arena) {
		return "", ErrIndexOutOfRange
	}

	return string(cString(t.arena[c.PromptOffset:end])), nil
}

// Seconds returns the time limit of the card at index i
func (t *Table) Seconds(i int) (int, error) {
	c, err := t.Card(i)
	if err != nil {
		return 0, err
	}
	return c.Seconds, nil
}

// Release drops the card records and prompt arena together. Accessors
// return ErrReleased afterwards.
func (t *Table) Release() {
	t.records = nil
	t.arena = nil
}
