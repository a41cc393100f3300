package outreach

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoLink(t *testing.T) {
	tests := []struct {
		name       string
		recipients []string
		subject    string
		body       string
		want       string
	}{
		{
			name:       "single recipient with subject and body",
			recipients: []string{"jane@companyabc.com"},
			subject:    "Quick question",
			body:       "Hi Jane,\nI saw your posting.",
			want:       "mailto:jane@companyabc.com?subject=Quick%20question&body=Hi%20Jane%2C%0AI%20saw%20your%20posting.",
		},
		{
			name:       "multiple recipients joined with commas",
			recipients: []string{"jane@companyabc.com", "john@companyabc.com"},
			subject:    "Hello",
			want:       "mailto:jane@companyabc.com,john@companyabc.com?subject=Hello",
		},
		{
			name:       "no subject or body yields bare address",
			recipients: []string{"jane@companyabc.com"},
			want:       "mailto:jane@companyabc.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MailtoLink(tt.recipients, tt.subject, tt.body))
		})
	}
}

func TestGmailComposeLink(t *testing.T) {
	link := GmailComposeLink(
		[]string{"jane@companyabc.com", "john@companyabc.com"},
		"Quick question",
		"Hi there",
	)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mail.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "cm", q.Get("view"))
	assert.Equal(t, "1", q.Get("fs"))
	assert.Equal(t, "jane@companyabc.com,john@companyabc.com", q.Get("to"))
	assert.Equal(t, "Quick question", q.Get("su"))
	assert.Equal(t, "Hi there", q.Get("body"))
}

func TestGmailComposeLinkOmitsEmptyFields(t *testing.T) {
	u, err := url.Parse(GmailComposeLink([]string{"jane@companyabc.com"}, "", ""))
	require.NoError(t, err)

	q := u.Query()
	assert.False(t, q.Has("su"))
	assert.False(t, q.Has("body"))
}
