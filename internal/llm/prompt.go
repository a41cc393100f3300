package llm

// jobInfoPrompt instructs the model to summarize a job description into
// the four JobInfo buckets. The description text is appended verbatim.
const jobInfoPrompt = `Parse this job description into its core responsibilities, technical requirements, soft skills, and highlights.
Return only a JSON object in the exact format shown below. No explanations, no extra text, no markdown fences, and no context beyond the JSON output.
Each value is a list of short strings copied or lightly condensed from the description.

{
  "core_responsibilities": ["design and ship backend services", "own the billing pipeline"],
  "technical_requirements": ["Python", "Kubernetes", "AWS", "SQL"],
  "soft_skills": ["cross-team communication", "mentoring"],
  "highlights": ["remote friendly", "$145,000 - $161,625"]
}

Given the constraints above, parse this job description:
`
