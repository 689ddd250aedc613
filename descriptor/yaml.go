package descriptor

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// file is the layout of the descriptor as the host reads it.
type file struct {
	Name         string             `yaml:"name"`
	Version      string             `yaml:"version"`
	Main         string             `yaml:"main"`
	Description  string             `yaml:"description,omitempty"`
	APIVersion   string             `yaml:"api-version"`
	Authors      []string           `yaml:"authors,omitempty"`
	Website      string             `yaml:"website,omitempty"`
	Dependencies *dependencySection `yaml:"dependencies,omitempty"`
}

type dependencySection struct {
	Bootstrap dependencyList `yaml:"bootstrap,omitempty"`
	Server    dependencyList `yaml:"server,omitempty"`
}

type dependencyEntry struct {
	Load          LoadOrder `yaml:"load"`
	Required      bool      `yaml:"required"`
	JoinClasspath bool      `yaml:"join-classpath"`
}

// dependencyList is encoded as a mapping keyed by plugin name. The mapping keeps the declaration order, which a Go
// map would not.
type dependencyList []Dependency

func (l dependencyList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, dep := range l {
		var value yaml.Node
		err := value.Encode(dependencyEntry{
			Load:          dep.Load,
			Required:      dep.Required,
			JoinClasspath: dep.JoinClasspath,
		})
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: dep.Name}, &value)
	}
	return node, nil
}

func (l *dependencyList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: dependencies must be a mapping of plugin names", node.Line)
	}
	list := make(dependencyList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		// Fields left out of the document take the host's defaults.
		entry := dependencyEntry{Load: LoadOmit, Required: true, JoinClasspath: true}
		if err := node.Content[i+1].Decode(&entry); err != nil {
			return fmt.Errorf("dependency %q: %w", node.Content[i].Value, err)
		}
		list = append(list, Dependency{
			Name:          node.Content[i].Value,
			Load:          entry.Load,
			Required:      entry.Required,
			JoinClasspath: entry.JoinClasspath,
		})
	}
	*l = list
	return nil
}

// Marshal validates the descriptor and encodes it in the format the host reads.
func (d Descriptor) Marshal() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plugin descriptor: %w", err)
	}
	f := file{
		Name:        d.Name,
		Version:     d.Version,
		Main:        d.Main,
		Description: d.Description,
		APIVersion:  d.APIVersion,
		Authors:     d.Authors,
		Website:     d.Website,
	}
	if len(d.Server) > 0 || len(d.Bootstrap) > 0 {
		f.Dependencies = &dependencySection{
			Bootstrap: d.Bootstrap,
			Server:    d.Server,
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("error encoding plugin descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding plugin descriptor: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a descriptor previously produced by Marshal. The result is validated.
func Parse(data []byte) (Descriptor, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Descriptor{}, fmt.Errorf("error decoding plugin descriptor: %w", err)
	}
	d := Descriptor{
		Name:        f.Name,
		Version:     f.Version,
		Main:        f.Main,
		APIVersion:  f.APIVersion,
		Description: f.Description,
		Authors:     f.Authors,
		Website:     f.Website,
	}
	if f.Dependencies != nil {
		d.Server = f.Dependencies.Server
		d.Bootstrap = f.Dependencies.Bootstrap
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("invalid plugin descriptor: %w", err)
	}
	return d, nil
}
