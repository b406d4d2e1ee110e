// File path: internal/render/vars.go
package render

import "regexp"

// placeholderPattern matches {{ identifier }} occurrences: ASCII letter or
// underscore start, alphanumeric/underscore continuation, optional inner
// whitespace.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// Variables returns the set of variable names a template references.
// Duplicates collapse; the result is independent of occurrence order.
func Variables(templateText string) map[string]struct{} {
	vars := make(map[string]struct{})
	for _, m := range placeholderPattern.FindAllStringSubmatch(templateText, -1) {
		vars[m[1]] = struct{}{}
	}
	return vars
}
