package plugin

import (
	"github.com/kr/pretty"
	"github.com/plexverse/serverready/config"
	"github.com/plexverse/serverready/descriptor"
)

// Kind is the phase of the host in which a dependency is needed.
type Kind int

const (
	// Server dependencies are needed once the server is running.
	Server Kind = iota
	// Bootstrap dependencies are needed while the plugin bootstraps, before the server starts.
	Bootstrap
)

func (k Kind) String() string {
	if k == Bootstrap {
		return "bootstrap"
	}
	return "server"
}

// Declaration is a dependency read from the configuration together with the phase it belongs to.
type Declaration struct {
	Kind       Kind
	Dependency descriptor.Dependency
}

// Provider reads a dependency entry in the config data. If this provider can successfully identify the entry, the
// declaration should be returned. If not, nil is returned, which indicates that the provider does not handle this
// entry. An error is only returned for an entry the provider recognises but cannot read.
type Provider = func(info map[string]any) (*Declaration, error)

var providers []Provider

// RegisterProvider adds a new type of provider to the list of providers. The provider that was added last will be used
// first.
func RegisterProvider(p Provider) {
	providers = append(providers, p)
}

// ParseAll parses all dependency entries and splits them into server and bootstrap dependencies, keeping the order in
// which they were declared.
func ParseAll(list []config.DependencyInfo) (server, bootstrap []descriptor.Dependency, err error) {
outerLoop:
	for num, info := range list {
		for i := len(providers) - 1; i >= 0; i-- {
			decl, err := providers[i](info)
			if err != nil {
				return nil, nil, pretty.Errorf("unable to parse dependency entry #%d: %v\n%# v", num+1, err, info)
			}
			if decl == nil {
				continue
			}
			switch decl.Kind {
			case Bootstrap:
				bootstrap = append(bootstrap, decl.Dependency)
			default:
				server = append(server, decl.Dependency)
			}
			continue outerLoop
		}
		return nil, nil, pretty.Errorf("unable to identify dependency entry #%d.\n%# v", num+1, info)
	}
	return server, bootstrap, nil
}
