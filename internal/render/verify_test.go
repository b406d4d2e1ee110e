// File path: internal/render/verify_test.go
package render

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lexdraft/lexdraft/internal/doctype"
)

func writeCompleteTemplates(t *testing.T, dir string) {
	t.Helper()
	for _, spec := range doctype.All() {
		var b strings.Builder
		for _, field := range spec.RequiredFields {
			fmt.Fprintf(&b, "%s: {{ %s }}\n", field, field)
		}
		writeTemplate(t, dir, spec.TemplateFile, b.String())
	}
}

func TestVerifyTemplatesPasses(t *testing.T) {
	dir := t.TempDir()
	writeCompleteTemplates(t, dir)
	if err := VerifyTemplates(dir); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyTemplatesChecksLocalizedVariants(t *testing.T) {
	dir := t.TempDir()
	writeCompleteTemplates(t, dir)
	// A Hindi rental template that dropped the rent_amount variable.
	writeTemplate(t, dir, filepath.Join("hi", "rental_agreement_template.txt"),
		"{{ landlord }} {{ landlord_address }} {{ tenant }} {{ tenant_address }} {{ property_address }} {{ start_date }} {{ duration }}")
	err := VerifyTemplates(dir)
	if err == nil {
		t.Fatal("expected verification failure")
	}
	if !strings.Contains(err.Error(), "rent_amount") {
		t.Fatalf("error should name the missing field: %v", err)
	}
}

func TestVerifyTemplatesReportsMissingBase(t *testing.T) {
	if err := VerifyTemplates(t.TempDir()); err == nil {
		t.Fatal("expected failure for empty template dir")
	}
}

func TestShippedTemplatesAreComplete(t *testing.T) {
	// The templates shipped in the repository must satisfy the same invariant.
	if err := VerifyTemplates(filepath.Join("..", "..", "templates")); err != nil {
		t.Fatalf("shipped templates: %v", err)
	}
}
