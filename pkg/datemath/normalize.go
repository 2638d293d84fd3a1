package datemath

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes Vietnamese diacritics (NFC) and lower-cases the text, so that
// input typed with combining marks matches the precomposed phrase table.
func Normalize(text string) string {
	// cases.Caser is stateful and not safe for concurrent use; build one per call.
	return cases.Lower(language.Vietnamese).String(norm.NFC.String(text))
}
