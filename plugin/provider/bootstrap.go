package provider

import (
	"github.com/plexverse/serverready/plugin"
)

// BootstrapProvider recognises entries of the form `bootstrap = "Name"`. The named plugin is needed while this plugin
// bootstraps.
func BootstrapProvider(info map[string]any) (*plugin.Declaration, error) {
	return declare(info, "bootstrap", plugin.Bootstrap)
}
