// File path: internal/catalog/catalog.go
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lexdraft/lexdraft/internal/doctype"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Catalog maps template variable names to human-readable "not specified"
// defaults. Lookups are layered: a document-type-specific entry wins over a
// global entry, and a variable registered in neither layer falls back to the
// literal "[<name> not specified]" marker. Built once at process start and
// read-only afterwards.
type Catalog struct {
	global map[string]string
	types  map[string]map[string]string
}

type catalogFile struct {
	Global map[string]string            `yaml:"global"`
	Types  map[string]map[string]string `yaml:"types"`
}

// Builtin returns the catalog embedded in the binary.
func Builtin() *Catalog {
	cat, err := parse(defaultsYAML)
	if err != nil {
		// The embedded file ships with the binary; a parse failure is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("catalog: embedded defaults invalid: %v", err))
	}
	return cat
}

// LoadFile reads a catalog from a YAML file, for deployments that override
// the built-in defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return cat, nil
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	cat := &Catalog{global: file.Global, types: file.Types}
	if cat.global == nil {
		cat.global = map[string]string{}
	}
	if cat.types == nil {
		cat.types = map[string]map[string]string{}
	}
	return cat, nil
}

// Default resolves the fallback value for a variable under a document type:
// type-specific entry, then global entry, then the literal marker.
func (c *Catalog) Default(docType doctype.Type, field string) string {
	if byType, ok := c.types[string(docType)]; ok {
		if v, ok := byType[field]; ok {
			return v
		}
	}
	if v, ok := c.global[field]; ok {
		return v
	}
	return fmt.Sprintf("[%s not specified]", field)
}

// Has reports whether a non-literal default is registered for the field under
// the document type.
func (c *Catalog) Has(docType doctype.Type, field string) bool {
	if byType, ok := c.types[string(docType)]; ok {
		if _, ok := byType[field]; ok {
			return true
		}
	}
	_, ok := c.global[field]
	return ok
}
