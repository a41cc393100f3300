package email

import (
	"fmt"
	"strings"

	"github.com/jonathan/recruiter-blast/internal/entity"
)

// Placeholder runes used while substituting format tokens. The longer
// tokens must be replaced before the single-letter ones, and already
// substituted text must not be matched again, so each token is first
// swapped for a rune that cannot occur in a format string.
const (
	phFirst        = "\x00"
	phLast         = "\x01"
	phFirstInitial = "\x02"
	phLastInitial  = "\x03"
)

// RenderKnownFormat applies a company email format such as
// "First.Last@example.com" or "FL@example.com" to an employee. Token
// matching is case-insensitive: "first" and "last" expand to the names,
// any remaining lone "f" and "l" expand to initials. The employee must
// have non-empty first and last names.
func RenderKnownFormat(emp entity.Employee, format string) (string, error) {
	if emp.FirstName == "" || emp.LastName == "" {
		return "", fmt.Errorf("employee %q needs first and last name to render format %q", emp.FullName, format)
	}

	local, domain, found := strings.Cut(strings.ToLower(format), "@")
	if !found {
		return "", fmt.Errorf("email format %q has no @domain part", format)
	}

	local = strings.ReplaceAll(local, "first", phFirst)
	local = strings.ReplaceAll(local, "last", phLast)
	local = strings.ReplaceAll(local, "f", phFirstInitial)
	local = strings.ReplaceAll(local, "l", phLastInitial)

	r := strings.NewReplacer(
		phFirst, emp.FirstName,
		phLast, emp.LastName,
		phFirstInitial, emp.FirstName[:1],
		phLastInitial, emp.LastName[:1],
	)
	return r.Replace(local) + "@" + domain, nil
}

// RenderBracketFormat expands a bracketed-token pattern such as
// "[first].[last]" or "[first_initial][last]" into a local part. The
// domain is left for the caller to append.
func RenderBracketFormat(emp entity.Employee, format string) (string, error) {
	if emp.FirstName == "" || emp.LastName == "" {
		return "", fmt.Errorf("employee %q needs first and last name to render format %q", emp.FullName, format)
	}

	r := strings.NewReplacer(
		"[first_initial]", emp.FirstName[:1],
		"[last_initial]", emp.LastName[:1],
		"[first]", emp.FirstName,
		"[last]", emp.LastName,
	)
	return r.Replace(format), nil
}
