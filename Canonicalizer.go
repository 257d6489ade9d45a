package main

import (
	"golang.org/x/text/unicode/norm"
	"regexp"
	"strings"
)

// blankSpellings are the null markers left behind by dataframe round trips.
var blankSpellings = []string{"nan", "none", "null", "<na>"}

type Canonicalizer struct {
	invisibleReplacer *strings.Replacer
	spacesRegex       *regexp.Regexp
}

func NewCanonicalizer() *Canonicalizer {
	removeChars := []string{"\ufeff", "\u200b", "\u200c", "\u200d", "\u2060"}

	replaceOldNew := make([]string, 0, len(removeChars)*2+2)
	for _, char := range removeChars {
		replaceOldNew = append(replaceOldNew, char, "")
	}
	// no-break space shows up in pasted headers
	replaceOldNew = append(replaceOldNew, "\u00a0", " ")

	return &Canonicalizer{
		invisibleReplacer: strings.NewReplacer(replaceOldNew...),
		spacesRegex:       regexp.MustCompile(`\s+`),
	}
}

// Clean returns s in NFC, trimmed, with invisible characters removed. Line
// breaks inside s are kept.
func (c *Canonicalizer) Clean(s string) string {
	return strings.TrimSpace(c.invisibleReplacer.Replace(norm.NFC.String(s)))
}

// Canonicalize is Clean with whitespace runs collapsed to a single space.
func (c *Canonicalizer) Canonicalize(s string) string {
	return c.spacesRegex.ReplaceAllString(c.Clean(s), " ")
}

// Key is the join key for headers, item numbers and reviewer names.
func (c *Canonicalizer) Key(s string) string {
	return strings.ToLower(c.spacesRegex.ReplaceAllString(c.Canonicalize(s), ""))
}

func (c *Canonicalizer) IsBlank(s string) bool {
	s = strings.ToLower(c.Canonicalize(s))
	if s == "" {
		return true
	}

	for _, spelling := range blankSpellings {
		if s == spelling {
			return true
		}
	}

	return false
}
