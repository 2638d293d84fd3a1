package textclf

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// tokenPattern keeps runs of two or more letters, digits or underscores.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenizer splits text into word n-grams.
type Tokenizer struct {
	NgramMin int
	NgramMax int
}

// Tokens returns the normalised word tokens of text in order.
func (t Tokenizer) Tokens(text string) []string {
	normalized := cases.Lower(language.Vietnamese).String(norm.NFC.String(text))
	return tokenPattern.FindAllString(normalized, -1)
}

// Terms returns every n-gram of text for n in [NgramMin, NgramMax], unigrams first.
// Words of an n-gram are joined by a single space.
func (t Tokenizer) Terms(text string) []string {
	tokens := t.Tokens(text)
	if len(tokens) == 0 {
		return nil
	}

	var terms []string
	for n := t.NgramMin; n <= t.NgramMax; n++ {
		if n == 1 {
			terms = append(terms, tokens...)
			continue
		}
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
