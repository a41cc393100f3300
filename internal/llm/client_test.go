package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

const validJobInfoJSON = `{
	"core_responsibilities": ["foo"],
	"technical_requirements": ["bar"],
	"soft_skills": ["baz"],
	"highlights": ["qux"]
}`

func TestDecodeJobInfo(t *testing.T) {
	info := DecodeJobInfo(validJobInfoJSON)

	assert.Equal(t, []string{"foo"}, info.CoreResponsibilities)
	assert.Equal(t, []string{"bar"}, info.TechnicalRequirements)
	assert.Equal(t, []string{"baz"}, info.SoftSkills)
	assert.Equal(t, []string{"qux"}, info.Highlights)
	assert.False(t, info.Empty())
}

func TestDecodeJobInfoStripsMarkdownFences(t *testing.T) {
	info := DecodeJobInfo("```json\n" + validJobInfoJSON + "\n```")
	assert.Equal(t, []string{"foo"}, info.CoreResponsibilities)
}

func TestDecodeJobInfoRejectsMalformedOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "sorry, I cannot help with that"},
		{"empty", ""},
		{"missing keys", `{"core_responsibilities": ["foo"]}`},
		{"wrong types", `{"core_responsibilities": "foo", "technical_requirements": [], "soft_skills": [], "highlights": []}`},
		{"extra keys", `{"core_responsibilities": [], "technical_requirements": [], "soft_skills": [], "highlights": [], "extra": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, DecodeJobInfo(tt.text).Empty())
		})
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)},
				},
			},
		},
	}
	assert.Equal(t, `{"a":1}`, ResponseText(resp))
}

func TestResponseTextAbsentLevels(t *testing.T) {
	assert.Equal(t, "", ResponseText(nil))
	assert.Equal(t, "", ResponseText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", ResponseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
	assert.Equal(t, "", ResponseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}))
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`{"a":1}`))
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "gemini-2.0-flash")
	assert.Error(t, err)
}
