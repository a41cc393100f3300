package email

import (
	"testing"

	"github.com/jonathan/recruiter-blast/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKnownFormat(t *testing.T) {
	emp := entity.Employee{FirstName: "foo", LastName: "bar"}

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"first_last", "FirstLast@gitlab.com", "foobar@gitlab.com"},
		{"f_last", "FLast@gitlab.com", "fbar@gitlab.com"},
		{"first_l", "FirstL@gitlab.com", "foob@gitlab.com"},
		{"f_l", "FL@gitlab.com", "fb@gitlab.com"},
		{"first_dot_l", "First.L@gitlab.com", "foo.b@gitlab.com"},
		{"first_dot_last", "First.Last@gitlab.com", "foo.bar@gitlab.com"},
		{"case_insensitivity", "fLaSt@GitLab.COM", "fbar@gitlab.com"},
		{"underscore", "First_Last@gitlab.com", "foo_bar@gitlab.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderKnownFormat(emp, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderKnownFormatErrors(t *testing.T) {
	_, err := RenderKnownFormat(entity.Employee{FirstName: "foo"}, "First.Last@x.com")
	assert.Error(t, err)

	_, err = RenderKnownFormat(entity.Employee{FirstName: "foo", LastName: "bar"}, "First.Last")
	assert.Error(t, err)
}

func TestRenderBracketFormat(t *testing.T) {
	emp := entity.Employee{FirstName: "foo", LastName: "bar"}

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"full_format", "[first].[last]", "foo.bar"},
		{"initial_format", "[first_initial][last_initial]", "fb"},
		{"underscore_format", "[first]_[last_initial]", "foo_b"},
		{"initial_then_full", "[first_initial][last]", "fbar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderBracketFormat(emp, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
