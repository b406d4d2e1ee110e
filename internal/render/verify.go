// File path: internal/render/verify.go
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lexdraft/lexdraft/internal/doctype"
)

// VerifyTemplates checks the template-authoring invariant: for every document
// type and every language variant present on disk, the type's required fields
// must all appear as variables of that template. Run at authoring or deploy
// time, never per request.
func VerifyTemplates(dir string) error {
	var problems []string
	for _, spec := range doctype.All() {
		paths := []string{filepath.Join(dir, spec.TemplateFile)}
		for _, lang := range doctype.Languages {
			if lang == doctype.BaseLanguage {
				continue
			}
			p := filepath.Join(dir, lang, spec.TemplateFile)
			if _, err := os.Stat(p); err == nil {
				paths = append(paths, p)
			}
		}
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", path, err))
				continue
			}
			vars := Variables(string(data))
			var absent []string
			for _, field := range spec.RequiredFields {
				if _, ok := vars[field]; !ok {
					absent = append(absent, field)
				}
			}
			if len(absent) > 0 {
				sort.Strings(absent)
				problems = append(problems, fmt.Sprintf("%s: required fields missing from template: %s",
					path, strings.Join(absent, ", ")))
			}
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}
