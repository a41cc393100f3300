package llm

import "github.com/xeipuuv/gojsonschema"

// jobInfoSchema pins the shape the model must return. Output that does
// not validate is discarded rather than partially trusted.
const jobInfoSchema = `{
  "type": "object",
  "properties": {
    "core_responsibilities": {"type": "array", "items": {"type": "string"}},
    "technical_requirements": {"type": "array", "items": {"type": "string"}},
    "soft_skills": {"type": "array", "items": {"type": "string"}},
    "highlights": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["core_responsibilities", "technical_requirements", "soft_skills", "highlights"],
  "additionalProperties": false
}`

// validJobInfo reports whether the text is a JSON document matching the
// job info schema.
func validJobInfo(text string) bool {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(jobInfoSchema),
		gojsonschema.NewStringLoader(text),
	)
	return err == nil && result.Valid()
}
