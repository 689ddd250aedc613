package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plexverse/serverready/safefile"
	"github.com/rs/zerolog"
)

const LockVersion = 1

// LockFile contains information about the descriptor that was generated last. It is used to determine whether the
// descriptor is up-to-date with the configuration.
type LockFile struct {
	// Version is the version the lockfile was made in.
	Version uint
	// Inputs is the checksum of every file the descriptor was generated from.
	Inputs string
	// Descriptor is the checksum of the generated descriptor. If the file was edited or removed afterwards it no
	// longer matches and the descriptor is generated again.
	Descriptor string
}

func emptyLock() *LockFile {
	return &LockFile{Version: LockVersion}
}

// GetLock returns the current lockfile. If it does not exist, or if the lockfile is of a previous version, the data is
// discarded and an empty lockfile is returned.
func GetLock(log *zerolog.Logger, path string) (*LockFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return emptyLock(), nil
	} else if err != nil {
		return nil, fmt.Errorf("error trying to open %s: %w", path, err)
	}

	lf := emptyLock()
	if err := json.Unmarshal(data, lf); err != nil {
		// The lock is only used to skip work. A file that cannot be parsed means the descriptor is regenerated.
		log.Error().Msgf("Error trying to parse %s: %v. Using an empty lock file.", path, err)
		return emptyLock(), nil
	}
	if lf.Version > LockVersion {
		// Do not override newer versions of the lockfile; we cannot know what they contain.
		return nil, fmt.Errorf("unknown lockfile version %d", lf.Version)
	} else if lf.Version < LockVersion {
		return emptyLock(), nil
	}
	return lf, nil
}

// Matches reports whether both lock files describe the same inputs and output.
func (l *LockFile) Matches(other *LockFile) bool {
	return l.Inputs != "" && l.Descriptor != "" && l.Inputs == other.Inputs && l.Descriptor == other.Descriptor
}

// WriteLock stores the lock file at path.
func WriteLock(path string, lf *LockFile) error {
	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return safefile.WriteFile(path, data)
}
