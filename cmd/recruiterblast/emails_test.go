package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmails(t *testing.T) {
	emailsFirst, emailsLast, emailsDomain = "Foo", "Bar", "gitlab.com"
	cmd, out := newTestCommand(t)

	require.NoError(t, runEmails(cmd, nil))

	var result struct {
		Emails []string `json:"emails"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Contains(t, result.Emails, "foobar@gitlab.com")
	assert.Contains(t, result.Emails, "foo.bar@gitlab.com")
	assert.Contains(t, result.Emails, "f.bar@gitlab.com")
}

func TestRunEmailsRequiresNames(t *testing.T) {
	emailsFirst, emailsLast, emailsDomain = "", "Bar", "gitlab.com"
	cmd, _ := newTestCommand(t)

	assert.Error(t, runEmails(cmd, nil))
}
