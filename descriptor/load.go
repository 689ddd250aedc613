package descriptor

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOrder is the position a plugin is loaded in relative to one of its dependencies.
type LoadOrder string

const (
	// LoadBefore makes the dependency load before the plugin declaring it.
	LoadBefore LoadOrder = "BEFORE"
	// LoadAfter makes the dependency load after the plugin declaring it.
	LoadAfter LoadOrder = "AFTER"
	// LoadOmit leaves the order up to the host.
	LoadOmit LoadOrder = "OMIT"
)

// ParseLoadOrder parses a load order name. Case is ignored.
func ParseLoadOrder(s string) (LoadOrder, error) {
	l := LoadOrder(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown load order %q: expected BEFORE, AFTER or OMIT", s)
	}
	return l, nil
}

// Valid reports whether l is one of the load orders accepted by the host.
func (l LoadOrder) Valid() bool {
	switch l {
	case LoadBefore, LoadAfter, LoadOmit:
		return true
	}
	return false
}

func (l LoadOrder) String() string {
	return string(l)
}

// UnmarshalYAML decodes a load order, rejecting names the host would not accept.
func (l *LoadOrder) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseLoadOrder(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = parsed
	return nil
}
