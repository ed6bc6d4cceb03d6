package scoped

import (
	"encoding/json"
	"reflect"
	"sort"
	"sync"
)

// CatalogEntry describes one registered class for discoverability tooling.
type CatalogEntry struct {
	Name      string         `json:"name"`
	Label     string         `json:"label,omitempty"`
	ValueType string         `json:"value_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// CatalogDocument lists every named class created in the process, sorted by
// name. It is an advisory snapshot for documentation and tooling; it says
// nothing about what is currently bound anywhere.
type CatalogDocument struct {
	Classes []CatalogEntry `json:"classes"`
}

var (
	catalogMu      sync.Mutex
	catalogEntries []CatalogEntry
)

func registerClass[T any](c *Class[T]) {
	if c.name == "" {
		return
	}
	entry := CatalogEntry{
		Name:      c.name,
		Label:     c.label,
		ValueType: reflect.TypeOf((*T)(nil)).Elem().String(),
		Metadata:  copyMetadata(c.metadata),
	}
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalogEntries = append(catalogEntries, entry)
}

// Catalog returns a snapshot of the registered classes.
func Catalog() CatalogDocument {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	out := make([]CatalogEntry, len(catalogEntries))
	copy(out, catalogEntries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ValueType < out[j].ValueType
		}
		return out[i].Name < out[j].Name
	})
	return CatalogDocument{Classes: out}
}

// ToJSON serialises the catalog document.
func (d CatalogDocument) ToJSON() ([]byte, error) {
	type alias CatalogDocument
	return json.Marshal(alias(d))
}
