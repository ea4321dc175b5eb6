package tabkv

import (
	"github.com/goccy/go-yaml"

	"github.com/tabkv/go-tabkv/tree"
)

// YAML renders the store as a YAML document, preserving entry order.
// A value entry becomes a scalar, a grouping entry becomes a mapping,
// and an entry that has both a value and children becomes a mapping
// whose empty-string key holds the value. Comments are not carried over.
func (s *Store) YAML() ([]byte, error) {
	return yaml.Marshal(yamlValue(s.tree.Root()))
}

func yamlValue(e tree.Ref) any {
	children := e.Children()
	v, hasValue := e.Value()
	if len(children) == 0 {
		if hasValue {
			return v
		}
		return nil
	}
	ms := yaml.MapSlice{}
	if hasValue {
		ms = append(ms, yaml.MapItem{Key: "", Value: v})
	}
	for _, c := range children {
		ms = append(ms, yaml.MapItem{Key: c.LocalKey(), Value: yamlValue(c)})
	}
	return ms
}
