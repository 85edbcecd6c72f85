package props

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/magiconair/properties"
	"gopkg.in/yaml.v3"
)

// Empty returns a fresh flat layer with reference expansion disabled. The
// store resolves references itself, so layers must keep raw values intact.
func Empty() *properties.Properties {
	p := properties.NewProperties()
	p.DisableExpansion = true
	return p
}

// FromMap builds a layer from m. Keys are inserted in sorted order so layer
// iteration stays deterministic.
func FromMap(m map[string]string) *properties.Properties {
	p := Empty()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p.MustSet(k, m[k])
	}
	return p
}

// FromFile loads a layer from a Java-style .properties file, or from a YAML
// file when the path ends in .yml or .yaml. Nested YAML maps flatten to
// dotted keys; null YAML values are dropped.
func FromFile(path string) (*properties.Properties, error) {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return fromYAML(path)
	default:
		l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
		p, err := l.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load properties file %s: %w", path, err)
		}
		return p, nil
	}
}

func fromYAML(path string) (*properties.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}
	p := Empty()
	flatten(p, "", doc)
	return p, nil
}

// flatten walks nested maps depth first, joining path segments with dots.
func flatten(p *properties.Properties, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case nil:
		case map[string]any:
			flatten(p, key, v)
		default:
			p.MustSet(key, fmt.Sprintf("%v", v))
		}
	}
}
