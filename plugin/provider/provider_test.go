package provider

import (
	"testing"

	"github.com/plexverse/serverready/config"
	"github.com/plexverse/serverready/descriptor"
	"github.com/plexverse/serverready/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllDefaultConfig(t *testing.T) {
	RegisterAll()
	server, bootstrap, err := plugin.ParseAll(config.Default().Dependency)
	require.NoError(t, err)

	assert.Empty(t, bootstrap)
	assert.Equal(t, []descriptor.Dependency{
		{Name: "StudioEngine", Load: descriptor.LoadBefore, Required: true, JoinClasspath: true},
	}, server)
}

func TestParseAllSplitsKinds(t *testing.T) {
	RegisterAll()
	RegisterAll()
	server, bootstrap, err := plugin.ParseAll([]config.DependencyInfo{
		{"server": "A", "load": "after"},
		{"bootstrap": "B", "required": false},
		{"server": "C", "join-classpath": false},
	})
	require.NoError(t, err)

	assert.Equal(t, []descriptor.Dependency{
		{Name: "A", Load: descriptor.LoadAfter, Required: true, JoinClasspath: true},
		{Name: "C", Load: descriptor.LoadOmit, Required: true, JoinClasspath: false},
	}, server)
	assert.Equal(t, []descriptor.Dependency{
		{Name: "B", Load: descriptor.LoadOmit, Required: false, JoinClasspath: true},
	}, bootstrap)
}

func TestParseAllErrors(t *testing.T) {
	RegisterAll()
	tests := []struct {
		name  string
		entry config.DependencyInfo
		want  string
	}{
		{"unknown entry", config.DependencyInfo{"plugin": "A"}, "unable to identify dependency entry #1"},
		{"name not a string", config.DependencyInfo{"server": int64(3)}, "must be surrounded by"},
		{"empty name", config.DependencyInfo{"server": ""}, "must not be empty"},
		{"both kinds", config.DependencyInfo{"server": "A", "bootstrap": "A"}, "cannot be both"},
		{"bad load order", config.DependencyInfo{"server": "A", "load": "FIRST"}, "unknown load order"},
		{"load not a string", config.DependencyInfo{"server": "A", "load": true}, "load order must be surrounded"},
		{"required not a bool", config.DependencyInfo{"server": "A", "required": "yes"}, "required must be true or false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := plugin.ParseAll([]config.DependencyInfo{tt.entry})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
