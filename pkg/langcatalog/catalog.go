// Package langcatalog maps Tesseract language pack keys to display names.
//
// The catalog is a static resource parsed once at startup. A service instance
// usually exposes only the subset of languages whose training data is actually
// installed on the host; Installed derives that subset while preserving the
// catalog order.
package langcatalog

import (
	_ "embed"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

//go:embed languages.json
var embedded []byte

// LanguageDescriptor describes one Tesseract language pack.
type LanguageDescriptor struct {
	// Key is the 3-letter Tesseract language code, e.g. "eng".
	Key string `json:"key"`
	// DisplayName is the human-readable language name.
	DisplayName string `json:"displayName"`
}

// Catalog is an ordered, read-only collection of language descriptors.
type Catalog struct {
	entries []LanguageDescriptor
	byKey   map[string]LanguageDescriptor
}

// Load parses the catalog bundled with the binary.
func Load() (*Catalog, error) {
	return parse(embedded)
}

// LoadFile parses a catalog from an external JSON file,
// overriding the bundled resource.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading language catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var entries []LanguageDescriptor
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing language catalog: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("language catalog is empty")
	}
	byKey := make(map[string]LanguageDescriptor, len(entries))
	for _, e := range entries {
		if len(e.Key) != 3 {
			return nil, fmt.Errorf("language catalog: key %q is not a 3-letter code", e.Key)
		}
		if e.DisplayName == "" {
			return nil, fmt.Errorf("language catalog: key %q has no display name", e.Key)
		}
		if _, dup := byKey[e.Key]; dup {
			return nil, fmt.Errorf("language catalog: duplicate key %q", e.Key)
		}
		byKey[e.Key] = e
	}
	return &Catalog{entries: entries, byKey: byKey}, nil
}

// Lookup returns the descriptor for key. The second return value is false
// when key is not a 3-letter code or is absent from the catalog.
func (c *Catalog) Lookup(key string) (LanguageDescriptor, bool) {
	if len(key) != 3 {
		return LanguageDescriptor{}, false
	}
	d, ok := c.byKey[key]
	return d, ok
}

// Installed returns a new catalog restricted to the given keys,
// in this catalog's order. Unknown keys are ignored.
func (c *Catalog) Installed(keys []string) *Catalog {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	sub := &Catalog{byKey: make(map[string]LanguageDescriptor)}
	for _, e := range c.entries {
		if _, ok := want[e.Key]; ok {
			sub.entries = append(sub.entries, e)
			sub.byKey[e.Key] = e
		}
	}
	return sub
}

// List returns the descriptors in catalog order.
func (c *Catalog) List() []LanguageDescriptor {
	out := make([]LanguageDescriptor, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the language keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of languages in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
