package provider

import (
	"github.com/plexverse/serverready/plugin"
)

// ServerProvider recognises entries of the form `server = "Name"`. The named plugin is needed while the server is
// running.
func ServerProvider(info map[string]any) (*plugin.Declaration, error) {
	return declare(info, "server", plugin.Server)
}
