// Package email generates candidate corporate email addresses for an
// employee, either by permuting common naming conventions or by applying
// a known company format.
package email

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/recruiter-blast/internal/entity"
)

// separators are the joiners seen in common corporate address schemes.
var separators = []string{"", ".", "_"}

// Permutations returns the set of plausible addresses for a person at
// the given domain. Names and domain are lowercased so the generated
// addresses are always lowercase. The result is deduplicated and sorted
// for stable output. First and last name must be non-empty.
func Permutations(firstName, lastName, domain string) ([]string, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required to permute emails (got %q, %q)", firstName, lastName)
	}

	firstName = strings.ToLower(firstName)
	lastName = strings.ToLower(lastName)
	domain = strings.ToLower(domain)

	fi := firstName[:1]
	li := lastName[:1]

	set := map[string]struct{}{
		firstName + "@" + domain: {},
		lastName + "@" + domain:  {},
	}
	for _, sep := range separators {
		for _, local := range []string{
			firstName + sep + lastName,
			lastName + sep + firstName,
			fi + sep + lastName,
			firstName + sep + li,
			fi + sep + li,
			lastName + sep + fi,
			li + sep + firstName,
			li + sep + fi,
		} {
			set[local+"@"+domain] = struct{}{}
		}
	}

	emails := make([]string, 0, len(set))
	for e := range set {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails, nil
}

// ForEmployee permutes addresses for an employee at the company domain.
func ForEmployee(emp entity.Employee, domain string) ([]string, error) {
	return Permutations(emp.FirstName, emp.LastName, domain)
}
