package deck

import (
	"fmt"
	"os"
)

// LoadFile opens the cards file at path, parses it and closes it again
func LoadFile(path string, opts ...Option) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cards file: %w", err)
	}
	defer file.Close()

	table, err := Parse(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return table, nil
}
