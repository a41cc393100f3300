// Package outreach builds one-click email composition links for a set
// of recruiter addresses.
package outreach

import (
	"fmt"
	"net/url"
	"strings"
)

const gmailComposeBaseURL = "https://mail.google.com/mail/"

// MailtoLink builds a mailto: URL addressing every recipient with the
// given subject and body. Subject and body are query-escaped; the
// recipient list is joined with commas as mail clients expect.
func MailtoLink(recipients []string, subject, body string) string {
	link := "mailto:" + strings.Join(recipients, ",")
	if q := composeQuery(subject, body); q != "" {
		link += "?" + q
	}
	return link
}

// GmailComposeLink builds a Gmail web compose URL for the recipients,
// for users who never configured a desktop mail client.
func GmailComposeLink(recipients []string, subject, body string) string {
	q := url.Values{}
	q.Set("view", "cm")
	q.Set("fs", "1")
	q.Set("to", strings.Join(recipients, ","))
	if subject != "" {
		q.Set("su", subject)
	}
	if body != "" {
		q.Set("body", body)
	}
	return gmailComposeBaseURL + "?" + q.Encode()
}

// composeQuery encodes the optional subject and body parameters.
// Spaces are percent-encoded rather than "+" because mailto handlers
// take the query literally.
func composeQuery(subject, body string) string {
	var parts []string
	if subject != "" {
		parts = append(parts, fmt.Sprintf("subject=%s", escapeMailto(subject)))
	}
	if body != "" {
		parts = append(parts, fmt.Sprintf("body=%s", escapeMailto(body)))
	}
	return strings.Join(parts, "&")
}

func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
