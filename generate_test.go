package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/plexverse/serverready/descriptor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultProject(t *testing.T) {
	log := zerolog.Nop()
	dir := t.TempDir()
	opts := generateOptions{config: filepath.Join(dir, "serverready.toml")}

	wrote, err := generate(&log, opts)
	require.NoError(t, err)
	assert.True(t, wrote)

	d, err := descriptor.Read(filepath.Join(dir, "build", "resources", "main", descriptor.FileName))
	require.NoError(t, err)
	assert.Equal(t, descriptor.Descriptor{
		Name:       "ServerReady",
		Version:    "1.0.0",
		Main:       "net.plexverse.serverready.ServerReady",
		APIVersion: "1.21",
		Server:     []descriptor.Dependency{descriptor.NewDependency("StudioEngine", descriptor.LoadBefore)},
	}, d)
	assert.FileExists(t, filepath.Join(dir, "serverready.lock"))
}

func TestGenerateSkipsWhenUpToDate(t *testing.T) {
	log := zerolog.Nop()
	dir := t.TempDir()
	opts := generateOptions{config: filepath.Join(dir, "serverready.toml"), out: filepath.Join(dir, "out.yml")}

	_, err := generate(&log, opts)
	require.NoError(t, err)

	wrote, err := generate(&log, opts)
	require.NoError(t, err)
	assert.False(t, wrote, "nothing changed")

	opts.force = true
	wrote, err = generate(&log, opts)
	require.NoError(t, err)
	assert.True(t, wrote, "--force always generates")
	opts.force = false

	require.NoError(t, os.Remove(opts.out))
	wrote, err = generate(&log, opts)
	require.NoError(t, err)
	assert.True(t, wrote, "a removed descriptor is generated again")

	cfg, err := os.ReadFile(opts.config)
	require.NoError(t, err)
	cfg = bytes.Replace(cfg, []byte(`version = "1.0.0"`), []byte(`version = "1.1.0"`), 1)
	require.NoError(t, os.WriteFile(opts.config, cfg, 0o644))
	wrote, err = generate(&log, opts)
	require.NoError(t, err)
	assert.True(t, wrote, "a changed configuration is generated again")

	d, err := descriptor.Read(opts.out)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", d.Version)
}

func TestGenerateReportsInvalidConfiguration(t *testing.T) {
	log := zerolog.Nop()
	dir := t.TempDir()
	path := filepath.Join(dir, "serverready.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[plugin]
name = "ServerReady"
api-version = "1.8"

[[dependency]]
server = "StudioEngine"
load = "SOMETIME"
`), 0o644))

	_, err := generate(&log, generateOptions{config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown load order")

	require.NoError(t, os.WriteFile(path, []byte(`
[plugin]
name = "ServerReady"
api-version = "1.8"
`), 0o644))
	_, err = generate(&log, generateOptions{config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version must not be empty")
	assert.Contains(t, err.Error(), "main must not be empty")
	assert.Contains(t, err.Error(), "older than the minimum")
	assert.NoFileExists(t, filepath.Join(dir, "serverready.lock"))
}

func TestInspectCommand(t *testing.T) {
	log := zerolog.Nop()
	dir := t.TempDir()
	out := filepath.Join(dir, descriptor.FileName)
	_, err := generate(&log, generateOptions{config: filepath.Join(dir, "serverready.toml"), out: out})
	require.NoError(t, err)

	var buf bytes.Buffer
	root := newRootCommand(&log)
	root.SetOut(&buf)
	root.SetArgs([]string{"inspect", out})
	require.NoError(t, root.Execute())

	assert.Contains(t, buf.String(), "ServerReady")
	assert.Regexp(t, `server\s+StudioEngine\s+BEFORE\s+required=true`, buf.String())
}
