package provider

import (
	"errors"
	"fmt"
	"sync"

	"github.com/plexverse/serverready/descriptor"
	"github.com/plexverse/serverready/plugin"
)

var registerOnce sync.Once

// RegisterAll registers every provider in this package. Calling it more than once has no further effect.
func RegisterAll() {
	registerOnce.Do(func() {
		plugin.RegisterProvider(ServerProvider)
		plugin.RegisterProvider(BootstrapProvider)
	})
}

// declare reads an entry whose name is stored under key. Entries without that key are not recognised.
func declare(info map[string]any, key string, kind plugin.Kind) (*plugin.Declaration, error) {
	n, ok := info[key]
	if !ok {
		return nil, nil
	}
	name, ok := n.(string)
	if !ok {
		return nil, fmt.Errorf("%s dependency name must be surrounded by \"\"", key)
	}
	if name == "" {
		return nil, fmt.Errorf("%s dependency name must not be empty", key)
	}
	for _, other := range []string{"server", "bootstrap"} {
		if _, ok := info[other]; ok && other != key {
			return nil, errors.New("an entry cannot be both a server and a bootstrap dependency")
		}
	}

	dep := descriptor.NewDependency(name, descriptor.LoadOmit)
	if x, ok := info["load"]; ok {
		s, ok := x.(string)
		if !ok {
			return nil, errors.New("load order must be surrounded by \"\"")
		}
		load, err := descriptor.ParseLoadOrder(s)
		if err != nil {
			return nil, err
		}
		dep.Load = load
	}
	var err error
	if dep.Required, err = boolField(info, "required", dep.Required); err != nil {
		return nil, err
	}
	if dep.JoinClasspath, err = boolField(info, "join-classpath", dep.JoinClasspath); err != nil {
		return nil, err
	}
	return &plugin.Declaration{Kind: kind, Dependency: dep}, nil
}

func boolField(info map[string]any, key string, def bool) (bool, error) {
	x, ok := info[key]
	if !ok {
		return def, nil
	}
	b, ok := x.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be true or false", key)
	}
	return b, nil
}
