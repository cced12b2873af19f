package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TextNormalizer implements domain.TextNormalizer.
type TextNormalizer struct{}

// NewTextNormalizer creates a normalizer
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize delegates to NormalizeText.
func (TextNormalizer) Normalize(text string) string {
	return NormalizeText(text)
}

// NormalizeText lower-cases text, drops every rune that is not a letter, a
// number, '_', whitespace, '.', ',' or '-', and collapses each whitespace run
// to a single ASCII space. The steps run in that order. The result is not
// trimmed, and NormalizeText(NormalizeText(s)) == NormalizeText(s).
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	// cases.Caser is stateful; build one per call.
	lowered := cases.Lower(language.Und).String(text)
	filtered := strings.Map(keepRune, lowered)
	return collapseWhitespace(filtered)
}

func keepRune(r rune) rune {
	switch {
	case unicode.IsLetter(r), unicode.IsNumber(r), isSpace(r):
		return r
	case r == '_', r == '.', r == ',', r == '-':
		return r
	default:
		return -1
	}
}

// isSpace is unicode.IsSpace plus the information separators U+001C..U+001F,
// which regular-expression \s also matches.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
