package card

import "time"

// Card represents a single prompt card parsed from a cards file
type Card struct {
	PromptOffset int // Byte offset of the prompt slot in the table arena
	Seconds      int // Time limit for the prompt, always positive
}

// Duration returns the card time limit as a time.Duration
func (c Card) Duration() time.Duration {
	return time.Duration(c.Seconds) * time.Second
}
