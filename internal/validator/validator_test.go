package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/promptdeck/internal/deck"
)

func writeCards(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cards")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidate_Clean(t *testing.T) {
	path := writeCards(t, "# party cards\nDo ten jumping jacks ~30\n\nName three fruits ~10\n")

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
	assert.Equal(t, 2, results.Cards)
}

func TestValidate_Warnings(t *testing.T) {
	path := writeCards(t, "Sing ~10\r\n"+
		"no delimiter here\n"+
		"~5\n"+
		"Hop ~20 seconds\n"+
		"Spin ~-3\n"+
		"A ~ B ~7\n")

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Equal(t, 4, results.Cards)

	assert.Equal(t, []string{
		"line 1: contains a carriage return (Windows line endings?)",
		"line 2: no '~' time field, line ignored",
		"line 3: empty prompt, line ignored",
		`line 4: text after the time is ignored: "seconds"`,
		"line 5: negative time is treated as positive",
		"line 6: more than one '~', time is read after the last one",
	}, results.Warnings)
}

func TestValidate_Errors(t *testing.T) {
	t.Run("invalid duration", func(t *testing.T) {
		path := writeCards(t, "Good ~5\nName three fruits ~0\n")

		results, err := NewValidator(path).Validate()
		require.NoError(t, err)
		require.Len(t, results.Errors, 1)
		assert.Contains(t, results.Errors[0], "Name three fruits")
		assert.Zero(t, results.Cards)
	})

	t.Run("every bad time is reported", func(t *testing.T) {
		path := writeCards(t, "A ~0\nB ~abc\nC ~5\n# skipped ~0\nD ~\n")

		results, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Equal(t, []string{
			`line 1: invalid time "0" for card "A"`,
			`line 2: invalid time "abc" for card "B"`,
			`line 5: invalid time "" for card "D"`,
		}, results.Errors)
		assert.Empty(t, results.Warnings)
	})

	t.Run("no cards", func(t *testing.T) {
		path := writeCards(t, "# nothing to see\n\n")

		results, err := NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Equal(t, []string{deck.ErrEmptyTable.Error()}, results.Errors)
	})

	t.Run("arena limit", func(t *testing.T) {
		path := writeCards(t, "A prompt that is long enough ~5\n")

		results, err := NewValidator(path, deck.WithMaxArenaSize(4)).Validate()
		require.NoError(t, err)
		require.Len(t, results.Errors, 1)
		assert.Contains(t, results.Errors[0], "exceeds limit")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewValidator(filepath.Join(t.TempDir(), "nope.cards")).Validate()
		assert.ErrorContains(t, err, "cards file not found")
	})
}
