// File path: internal/extract/patterns.go
package extract

import (
	"regexp"
	"strings"
)

var (
	amountPattern   = regexp.MustCompile(`(?i)(?:Rs\.?|INR)?\s*(\d+(?:,\d+)*(?:\.\d{2})?)\s*(?:rupees?|Rs\.?|INR)?`)
	datePattern     = regexp.MustCompile(`(?i)\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{1,2}(?:st|nd|rd|th)?\s+(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\s+\d{4}`)
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:year|month|week|day)s?`)
	propertyPattern = regexp.MustCompile(`(?i)a property located at (.+?)(?:\.|,|$)`)
	matterPattern   = regexp.MustCompile(`(?i)for (.+?) purposes`)
)

// amountFields et al. are broadcast targets: one pattern match populates every
// semantically related field at once. A single date match therefore sets both
// effective_date and expiry_date; the fields can legitimately differ, so this
// is a known precision limitation kept for compatibility with the data the
// reconciler's defaults were tuned against.
var (
	amountFields   = []string{"rent_amount", "sale_amount", "lease_amount"}
	dateFields     = []string{"start_date", "effective_date", "expiry_date", "sale_date"}
	durationFields = []string{"duration", "renewal_period", "lease_period", "notice_period"}
)

// applyPatterns runs the four pattern searches over the text and writes the
// first match of each into the mapping. Fields with no match stay absent.
func applyPatterns(entities map[string]string, text string) {
	if m := amountPattern.FindStringSubmatch(text); m != nil && m[1] != "" {
		broadcast(entities, amountFields, m[1])
	}
	if m := datePattern.FindString(text); m != "" {
		broadcast(entities, dateFields, m)
	}
	if m := durationPattern.FindString(text); m != "" {
		broadcast(entities, durationFields, m)
	}
	if _, ok := entities["property_description"]; !ok {
		if m := propertyPattern.FindStringSubmatch(text); m != nil {
			entities["property_description"] = strings.TrimSpace(m[1])
		}
	}
	if _, ok := entities["matter_description"]; !ok {
		if m := matterPattern.FindStringSubmatch(text); m != nil {
			entities["matter_description"] = strings.TrimSpace(m[1]) + " purposes"
		}
	}
}

func broadcast(entities map[string]string, fields []string, value string) {
	for _, f := range fields {
		entities[f] = value
	}
}
