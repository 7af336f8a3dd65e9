// Package textshape normalizes raw OCR output into a compact, printable form.
//
// Cleaning applies, in order: newline normalization, removal of non-printable
// characters (keeping newlines and tabs), joining of words hyphenated across
// line breaks, collapsing of whitespace runs to single spaces, and trimming.
// The raw text is preserved alongside the cleaned form.
package textshape

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Result is the shaped outcome of one recognition run.
type Result struct {
	RawText     string `json:"rawText"`
	CleanedText string `json:"cleanedText"`
	LanguageKey string `json:"languageKey"`
}

// Shape packages raw engine output with its cleaned form and the language used.
func Shape(raw, languageKey string) Result {
	return Result{RawText: raw, CleanedText: Clean(raw), LanguageKey: languageKey}
}

var wsRun = regexp2.MustCompile(`\s+`, 0)

// nonPrintable drops control characters and anything else Tesseract may emit
// that has no visible representation. Newlines and tabs survive because the
// dehyphenation step still needs line structure.
var nonPrintable = runes.Remove(runes.Predicate(func(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.IsControl(r) || !unicode.IsGraphic(r)
}))

// Clean normalizes raw OCR text per the package rules.
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s, _, _ = transform.String(nonPrintable, s)
	s = dehyphenate(s)
	s, _ = wsRun.Replace(s, " ", -1, -1)
	return strings.TrimSpace(s)
}

// dehyphenate joins words that the engine split with a hyphen at the end of a
// line, pulling the first word of the following line up.
func dehyphenate(s string) string {
	lines := strings.Split(s, "\n")
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimRight(lines[i], " \t")
		if len(line) < 2 || !strings.HasSuffix(line, "-") {
			continue
		}
		next := strings.TrimLeft(lines[i+1], " \t")
		word, rest, more := strings.Cut(next, " ")
		if word == "" {
			continue
		}
		lines[i] = strings.TrimSuffix(line, "-") + word
		if more {
			lines[i+1] = rest
		} else {
			lines[i+1] = ""
		}
	}
	return strings.Join(lines, "\n")
}
