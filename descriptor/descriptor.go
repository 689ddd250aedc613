package descriptor

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
)

// FileName is the name the host expects the descriptor to have inside the plugin jar.
const FileName = "paper-plugin.yml"

// MinAPIVersion is the first API version whose host understands this descriptor format.
var MinAPIVersion = version.Must(version.NewVersion("1.19"))

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	mainPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// Descriptor describes a plugin to the host that loads it. It is produced once, when the plugin is built, and is
// never changed afterwards.
type Descriptor struct {
	// Name is the name of the plugin. Other plugins use it to refer to this plugin in their own dependency lists.
	Name string
	// Version is the version of the plugin. The host does not interpret it.
	Version string
	// Main is the fully qualified identifier of the entry point the host instantiates, such as
	// "net.plexverse.serverready.ServerReady".
	Main string
	// APIVersion is the version of the host API the plugin targets, such as "1.21".
	APIVersion string
	// Description, Authors and Website are optional and only shown to server owners.
	Description string
	Authors     []string
	Website     string
	// Server lists the plugins this plugin depends on while the server is running.
	Server []Dependency
	// Bootstrap lists the plugins this plugin depends on during the bootstrap phase.
	Bootstrap []Dependency
}

// Dependency is a named plugin together with the order in which it should be loaded relative to the plugin that
// declares it.
type Dependency struct {
	// Name is the name of the plugin that is depended on.
	Name string
	// Load is the load order relative to the dependency.
	Load LoadOrder
	// Required makes the host refuse to load the plugin when the dependency is missing.
	Required bool
	// JoinClasspath gives the plugin access to the classes of the dependency.
	JoinClasspath bool
}

// NewDependency returns a dependency with the defaults the host assumes for fields that are not set.
func NewDependency(name string, load LoadOrder) Dependency {
	return Dependency{
		Name:          name,
		Load:          load,
		Required:      true,
		JoinClasspath: true,
	}
}

// Validate checks the descriptor for fields the host would reject. All problems are returned at once, joined into a
// single error.
func (d Descriptor) Validate() error {
	var errs []error
	switch {
	case d.Name == "":
		errs = append(errs, errors.New("name must not be empty"))
	case !namePattern.MatchString(d.Name):
		errs = append(errs, fmt.Errorf("name %q may only contain letters, digits, '_', '.' and '-'", d.Name))
	}
	if d.Version == "" {
		errs = append(errs, errors.New("version must not be empty"))
	}
	switch {
	case d.Main == "":
		errs = append(errs, errors.New("main must not be empty"))
	case !mainPattern.MatchString(d.Main):
		errs = append(errs, fmt.Errorf("main %q is not a valid qualified identifier", d.Main))
	}
	if d.APIVersion == "" {
		errs = append(errs, errors.New("api-version must not be empty"))
	} else if v, err := version.NewVersion(d.APIVersion); err != nil {
		errs = append(errs, fmt.Errorf("api-version %q: %w", d.APIVersion, err))
	} else if v.LessThan(MinAPIVersion) {
		errs = append(errs, fmt.Errorf("api-version %s is older than the minimum supported version %s", d.APIVersion, MinAPIVersion))
	}
	errs = append(errs, validateDependencies("server", d.Name, d.Server)...)
	errs = append(errs, validateDependencies("bootstrap", d.Name, d.Bootstrap)...)
	return errors.Join(errs...)
}

func validateDependencies(kind, self string, deps []Dependency) []error {
	var errs []error
	seen := make(map[string]struct{}, len(deps))
	for i, dep := range deps {
		if dep.Name == "" {
			errs = append(errs, fmt.Errorf("%s dependency #%d: name must not be empty", kind, i+1))
			continue
		}
		if dep.Name == self {
			errs = append(errs, fmt.Errorf("%s dependency %q: a plugin cannot depend on itself", kind, dep.Name))
		}
		if _, ok := seen[dep.Name]; ok {
			errs = append(errs, fmt.Errorf("%s dependency %q is declared more than once", kind, dep.Name))
		}
		seen[dep.Name] = struct{}{}
		if !dep.Load.Valid() {
			errs = append(errs, fmt.Errorf("%s dependency %q: load order %q is not one of BEFORE, AFTER or OMIT", kind, dep.Name, dep.Load))
		}
	}
	return errs
}
