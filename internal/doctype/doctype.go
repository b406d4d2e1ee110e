// File path: internal/doctype/doctype.go
package doctype

import (
	"fmt"
	"strings"
)

// Type identifies one of the supported legal document categories.
type Type string

const (
	RentalAgreement Type = "rental_agreement"
	LandSaleDeed    Type = "land_sale_deed"
	PowerOfAttorney Type = "power_of_attorney"
	HouseLease      Type = "house_lease"
)

// Spec describes a document type: the keywords used for classification, the
// fields a complete document needs, and the template file it renders from.
// Specs are immutable after process start.
type Spec struct {
	Type           Type
	Keywords       []string
	RequiredFields []string
	TemplateFile   string
}

// BaseLanguage is the language templates fall back to when a localized
// variant is unavailable.
const BaseLanguage = "en"

// Languages lists the supported language codes. The first entry is the base
// language.
var Languages = []string{"en", "hi", "bn", "te", "mr", "ur", "gu", "kn", "or", "ta"}

// languageNames maps supported codes to English language names, used for
// prompt-driven language selection and for phrasing translation requests.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
	"te": "Telugu",
	"mr": "Marathi",
	"ur": "Urdu",
	"gu": "Gujarati",
	"kn": "Kannada",
	"or": "Odia",
	"ta": "Tamil",
}

// LanguageName returns the English name for a supported code, or the code
// itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// LanguageCode resolves an English language name (case-insensitive) to its
// code.
func LanguageCode(name string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for code, n := range languageNames {
		if strings.ToLower(n) == lowered {
			return code, true
		}
	}
	return "", false
}

// LanguageSupported reports whether code is one of the supported languages.
func LanguageSupported(code string) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}

// specs is the ordered document type table. Declaration order matters: the
// classifier breaks score ties in favour of the earlier entry.
var specs = []Spec{
	{
		Type:     RentalAgreement,
		Keywords: []string{"rental", "rent", "lease", "tenant", "landlord", "monthly"},
		RequiredFields: []string{
			"landlord", "landlord_address", "tenant", "tenant_address",
			"property_address", "rent_amount", "start_date", "duration",
		},
		TemplateFile: "rental_agreement_template.txt",
	},
	{
		Type:     LandSaleDeed,
		Keywords: []string{"sale", "deed", "property", "buyer", "seller", "purchase"},
		RequiredFields: []string{
			"seller", "seller_address", "buyer", "buyer_address",
			"property_address", "sale_amount",
		},
		TemplateFile: "land_sale_deed_template.txt",
	},
	{
		Type:     PowerOfAttorney,
		Keywords: []string{"power", "attorney", "delegate", "authority", "behalf"},
		RequiredFields: []string{
			"principal", "principal_address", "attorney", "attorney_address",
			"matter_description", "effective_date", "expiry_date",
		},
		TemplateFile: "power_of_attorney_template.txt",
	},
	{
		Type:     HouseLease,
		Keywords: []string{"house", "lease", "lessor", "lessee", "property"},
		RequiredFields: []string{
			"lessor", "lessor_age", "lessor_father", "lessor_address",
			"lessor_city", "lessor_pincode",
			"lessee", "lessee_age", "lessee_father", "lessee_address",
			"lessee_city", "lessee_pincode",
			"property_address", "property_city", "property_pincode",
			"lease_period", "start_date", "end_date",
			"lease_amount", "lease_amount_words", "rent_due_date",
			"security_deposit", "security_deposit_words", "notice_period",
			"number_of_rooms",
		},
		TemplateFile: "house_lease_template.txt",
	},
}

// All returns the document type table in declaration order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// Lookup resolves a type identifier to its spec.
func Lookup(t Type) (Spec, bool) {
	for _, s := range specs {
		if s.Type == t {
			return s, true
		}
	}
	return Spec{}, false
}

// Parse validates a raw identifier against the enumerated set.
func Parse(raw string) (Type, error) {
	t := Type(strings.TrimSpace(raw))
	if _, ok := Lookup(t); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, raw)
	}
	return t, nil
}

// Title renders a human-readable name, e.g. "Rental Agreement".
func (t Type) Title() string {
	parts := strings.Split(string(t), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
