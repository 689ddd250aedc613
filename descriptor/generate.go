package descriptor

import (
	"fmt"
	"os"

	"github.com/plexverse/serverready/safefile"
)

// Generate encodes the descriptor and writes it to path. The previous file, if any, stays intact when encoding or
// writing fails.
func Generate(path string, d Descriptor) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := safefile.WriteFile(path, data); err != nil {
		return fmt.Errorf("error writing %s: %w", FileName, err)
	}
	return nil
}

// Read reads and parses the descriptor stored at path.
func Read(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, err
	}
	return Parse(data)
}
