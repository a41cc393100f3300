package parse

import "strings"

// Honorifics and credentials that are not part of a person's name.
var (
	namePrefixes = map[string]bool{
		"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	}
	nameSuffixes = map[string]bool{
		"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
		"phd": true, "md": true, "mba": true, "cpa": true, "esq": true,
	}
)

// SplitName resolves first and last name from a scraped display name
// using conventional western ordering: the first remaining token is the
// first name and the last remaining token is the last name, after
// honorific prefixes and credential suffixes are dropped. Periods are
// stripped from initials-only tokens ("J." -> "J").
func SplitName(fullName string) (first, last string) {
	tokens := strings.Fields(strings.TrimSpace(fullName))

	for len(tokens) > 0 && namePrefixes[normalizeNameToken(tokens[0])] {
		tokens = tokens[1:]
	}
	for len(tokens) > 1 && nameSuffixes[normalizeNameToken(tokens[len(tokens)-1])] {
		tokens = tokens[:len(tokens)-1]
	}

	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return cleanNameToken(tokens[0]), ""
	default:
		return cleanNameToken(tokens[0]), cleanNameToken(tokens[len(tokens)-1])
	}
}

// normalizeNameToken lowercases a token and drops punctuation so "Jr.,"
// and "jr" compare equal.
func normalizeNameToken(tok string) string {
	return strings.ToLower(strings.Trim(tok, ".,"))
}

// cleanNameToken strips the trailing period from initials-only tokens
// and any stray commas.
func cleanNameToken(tok string) string {
	return strings.Trim(tok, ".,")
}
