package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a work-type label for rule matching: NFC-fold the
// text (decomposed Hangul pasted from some spreadsheet tools must equal
// the precomposed literal), trim surrounding whitespace and invisible
// characters, and upper-case. Hangul is case-invariant and passes
// through the case fold unaffected; it exists so Latin-script labels
// like JIRA or qms match regardless of input case.
func Normalize(rawLabel string) string {
	s := norm.NFC.String(rawLabel)
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || isInvisible(r)
	})
	return strings.ToUpper(s)
}

// isInvisible reports zero-width and BOM-like characters that survive a
// plain whitespace trim when text is pasted from rich sources.
func isInvisible(r rune) bool {
	switch r {
	case '​', '‌', '‍', '⁠', '﻿':
		return true
	}
	return false
}
