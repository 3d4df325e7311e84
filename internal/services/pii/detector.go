// Package pii provides rule-based detection and scrubbing of personally
// identifiable information in conversation text.
package pii

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/contactiq/insight-service/internal/domain/models"
)

// pattern pairs a PII type with its detection regex. Patterns are checked
// in declaration order; when two spans overlap, the earlier type wins.
type pattern struct {
	piiType models.PIIType
	re      *regexp.Regexp
}

var patterns = []pattern{
	{models.PIITypeSSN, regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)},
	{models.PIITypeCreditCard, regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)},
	{models.PIITypeEmail, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{models.PIITypePhone, regexp.MustCompile(`\b(?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`)},
	{models.PIITypeAccountNumber, regexp.MustCompile(`(?i)\b(?:acct|account)\s*(?:number|no\.?|#)?\s*:?\s*\d{6,12}\b`)},
	{models.PIITypeDOB, regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])/(?:0?[1-9]|[12]\d|3[01])/(?:19|20)\d{2}\b`)},
	{models.PIITypeAddress, regexp.MustCompile(`(?i)\b\d{1,5}\s+[a-z]+(?:\s+[a-z]+)?\s+(?:street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|way)\b`)},
}

// Detector finds PII spans in text using a fixed regex set.
type Detector struct{}

// NewDetector creates a new PII detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns all PII matches in the text, sorted by start offset.
// Matches never overlap: when two patterns claim overlapping spans, the
// match produced first keeps the span.
func (d *Detector) Detect(text string) []models.PIIMatch {
	matches := make([]models.PIIMatch, 0)

	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			if overlapsAny(matches, loc[0], loc[1]) {
				continue
			}
			matches = append(matches, models.PIIMatch{
				Type:   p.piiType,
				Value:  text[loc[0]:loc[1]],
				Masked: maskToken(p.piiType),
				Start:  loc[0],
				End:    loc[1],
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches
}

// Scrub replaces every detected PII span with its placeholder token.
func (d *Detector) Scrub(text string) string {
	matches := d.Detect(text)

	// Replace back to front so earlier offsets stay valid.
	out := text
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		out = out[:m.Start] + m.Masked + out[m.End:]
	}
	return out
}

// maskToken returns the fixed placeholder token for a PII type.
func maskToken(t models.PIIType) string {
	return fmt.Sprintf("[REDACTED:%s]", t)
}

// overlapsAny reports whether [start,end) intersects any accepted match.
func overlapsAny(matches []models.PIIMatch, start, end int) bool {
	for _, m := range matches {
		if start < m.End && end > m.Start {
			return true
		}
	}
	return false
}
