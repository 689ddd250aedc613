package plugin

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogpeppe/go-internal/dirhash"
)

// Checksum returns a deterministic checksum over the contents of the given files. The extra strings are hashed as
// well, which allows values that are not stored in a file, such as the program version, to invalidate a checksum.
// The order of the paths does not matter.
func Checksum(paths []string, extra ...string) (string, error) {
	byName := make(map[string]func() (io.ReadCloser, error), len(paths)+1)
	names := make([]string, 0, len(paths)+1)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		// dirhash rejects names containing newlines, and only needs them to be unique.
		name := filepath.ToSlash(abs)
		if _, ok := byName[name]; ok {
			continue
		}
		byName[name] = func() (io.ReadCloser, error) {
			return os.Open(abs)
		}
		names = append(names, name)
	}
	if len(extra) > 0 {
		data := []byte(strings.Join(extra, "\x00"))
		byName["\x00extra"] = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
		names = append(names, "\x00extra")
	}
	return dirhash.Hash1(names, func(name string) (io.ReadCloser, error) {
		return byName[name]()
	})
}
