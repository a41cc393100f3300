// Package extract pulls structured fragments out of free text and
// loosely structured provider payloads: email addresses, job post URLs,
// suggested email format patterns, and JSON objects embedded in text.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9._%-]+\.[A-Za-z]{2,}`)

	jobURLRe = regexp.MustCompile(`https://www\.linkedin\.com/jobs/view/(\d+)`)

	// Bracketed email format patterns as they appear in search snippets,
	// e.g. "[first_initial][last]" or "[first].[last]".
	bracketFormatRe = regexp.MustCompile(`\[(?:first|last)(?:_initial)?\][._-]?\[(?:first|last)(?:_initial)?\]`)
)

// EmailsFromText returns every email address in the text in order of
// appearance. Duplicates are kept; callers that need a set deduplicate
// at the collection layer.
func EmailsFromText(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// LinkedInJobURL returns the canonical job post URL found in the text,
// digits only, with any trailing path, query or fragment dropped. It
// returns the empty string when no job URL is present; callers must
// treat that as invalid input. The function is idempotent on its own
// output.
func LinkedInJobURL(text string) string {
	m := jobURLRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return "https://www.linkedin.com/jobs/view/" + m[1]
}

// SuggestedEmailFormat locates a bracketed-token email format pattern
// inside a natural-language sentence. The second return value is false
// when the text carries no such pattern.
func SuggestedEmailFormat(text string) (string, bool) {
	m := bracketFormatRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// JSONObject decodes the text as a JSON object. Malformed input yields
// an empty map, never an error; LLM and search payloads are not trusted
// to be well formed.
func JSONObject(text string) map[string]any {
	out := map[string]any{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return map[string]any{}
	}
	return out
}

// StripHTML reduces a search result snippet to plain text. Providers
// wrap query terms in markup (<b>, <strong>) that would otherwise break
// email extraction mid-address.
func StripHTML(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}
	return doc.Text()
}
