package deck

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_BoundsChecked(t *testing.T) {
	table, err := Parse(strings.NewReader("A ~1\nB ~2\n"))
	require.NoError(t, err)

	for _, i := range []int{-1, 2, 100} {
		_, err := table.Prompt(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)

		_, err = table.Seconds(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)

		_, err = table.Card(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}
}

func TestTable_Release(t *testing.T) {
	table, err := Parse(strings.NewReader("A ~1\n"))
	require.NoError(t, err)

	table.Release()

	assert.Zero(t, table.Count())
	_, err = table.Prompt(0)
	assert.ErrorIs(t, err, ErrReleased)
	_, err = table.Seconds(0)
	assert.ErrorIs(t, err, ErrReleased)
}

func TestTable_ConcurrentReaders(t *testing.T) {
	table, err := Parse(strings.NewReader("A ~1\nB ~2\nC ~3\n"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				prompt, err := table.Prompt(i % table.Count())
				assert.NoError(t, err)
				assert.Len(t, prompt, 1)
			}
		}()
	}
	wg.Wait()
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "party.cards")
	require.NoError(t, os.WriteFile(path, []byte("# party\nHum a tune ~15\n"), 0644))

	table, err := LoadFile(path)
	require.NoError(t, err)
	defer table.Release()

	prompt, err := table.Prompt(0)
	require.NoError(t, err)
	assert.Equal(t, "Hum a tune", prompt)

	c, err := table.Card(0)
	require.NoError(t, err)
	assert.Equal(t, "15s", c.Duration().String())

	_, err = LoadFile(filepath.Join(dir, "missing.cards"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.cards")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0644))
	_, err = LoadFile(empty)
	assert.ErrorIs(t, err, ErrEmptyTable)
}
