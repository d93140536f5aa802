package termui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{""}, WrapText("   ", 20))
	assert.Equal(t, []string{"Name three", "fruits"}, WrapText("Name three fruits", 10))
	assert.Equal(t, []string{"Do ten jumping jacks"}, WrapText("Do ten jumping jacks", 40))

	// Widths below 10 fall back to 40
	assert.Equal(t, []string{"Do ten jumping jacks"}, WrapText("Do ten jumping jacks", 3))
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		9:    "00:09",
		60:   "01:00",
		95:   "01:35",
		3600: "60:00",
	}
	for seconds, want := range tests {
		assert.Equal(t, want, FormatClock(seconds))
	}
}

func TestRule(t *testing.T) {
	assert.Len(t, Rule(65), 65)
	assert.Len(t, Rule(0), 80)
}
