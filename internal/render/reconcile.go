// File path: internal/render/reconcile.go
package render

import (
	"sort"

	"github.com/lexdraft/lexdraft/internal/catalog"
	"github.com/lexdraft/lexdraft/internal/doctype"
)

// Reconcile diffs a template's variables against the supplied data and fills
// the gap from the default catalog. Keys already present in data are never
// overwritten, even when their value is empty: presence, not truthiness,
// marks a field as supplied. The returned missing slice is sorted and lists
// the variables that had to be defaulted; valid is true when it is empty.
func Reconcile(templateText string, data map[string]string, docType doctype.Type, cat *catalog.Catalog) (bool, map[string]string, []string) {
	vars := Variables(templateText)

	complete := make(map[string]string, len(vars)+len(data))
	for k, v := range data {
		complete[k] = v
	}

	var missing []string
	for name := range vars {
		if _, ok := complete[name]; ok {
			continue
		}
		missing = append(missing, name)
		complete[name] = cat.Default(docType, name)
	}
	sort.Strings(missing)
	return len(missing) == 0, complete, missing
}
