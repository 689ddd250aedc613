package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLockMissing(t *testing.T) {
	log := zerolog.Nop()
	lf, err := GetLock(&log, filepath.Join(t.TempDir(), "serverready.lock"))
	require.NoError(t, err)
	assert.Equal(t, &LockFile{Version: LockVersion}, lf)
}

func TestLockRoundTrip(t *testing.T) {
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "serverready.lock")
	want := &LockFile{Version: LockVersion, Inputs: "h1:in", Descriptor: "h1:out"}
	require.NoError(t, WriteLock(path, want))

	got, err := GetLock(&log, path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, want.Matches(got))
}

func TestGetLockDiscardsUnreadableAndOldFiles(t *testing.T) {
	log := zerolog.Nop()
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.lock")
	require.NoError(t, os.WriteFile(garbage, []byte("{not json"), 0o644))
	lf, err := GetLock(&log, garbage)
	require.NoError(t, err)
	assert.Empty(t, lf.Inputs)

	old := filepath.Join(dir, "old.lock")
	require.NoError(t, os.WriteFile(old, []byte(`{"Version":0,"Inputs":"h1:in","Descriptor":"h1:out"}`), 0o644))
	lf, err = GetLock(&log, old)
	require.NoError(t, err)
	assert.Empty(t, lf.Inputs)
}

func TestGetLockRejectsNewerVersion(t *testing.T) {
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "serverready.lock")
	require.NoError(t, os.WriteFile(path, []byte(`{"Version":99}`), 0o644))

	_, err := GetLock(&log, path)
	assert.ErrorContains(t, err, "unknown lockfile version 99")
}

func TestLockMatches(t *testing.T) {
	a := &LockFile{Version: LockVersion, Inputs: "x", Descriptor: "y"}
	assert.False(t, a.Matches(&LockFile{Version: LockVersion, Inputs: "x", Descriptor: "z"}))
	assert.False(t, emptyLock().Matches(emptyLock()), "an empty lock never matches")
}
