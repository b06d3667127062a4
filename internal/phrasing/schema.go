package phrasing

import "github.com/abhisek/learno/internal/llm"

// SpeechSchema defines the JSON schema for phrased teacher turns.
var SpeechSchema = &llm.Schema{
	Name:        "teacher-speech",
	Description: "A single teacher utterance, ready to be spoken aloud to the child",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":        "string",
				"description": "What the teacher says, verbatim. May embed a [GENERATE_IMAGE: description] marker when a picture should accompany the speech.",
			},
		},
		"required":             []any{"text"},
		"additionalProperties": false,
	},
}
