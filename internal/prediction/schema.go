package prediction

import (
	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/llm"
)

// PredictionSchema is the reply contract for the oracle. Unknown extra keys
// are tolerated.
var PredictionSchema = &llm.Schema{
	Name:        "exam-score-prediction",
	Description: "Predicted exam score with performance band and analytical insight",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"description": "Predicted exam score (0-100)",
			},
			"classification": map[string]any{
				"type":        "string",
				"enum":        classificationEnum(),
				"description": "Performance classification",
			},
			"insights": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Analytical reasoning for the prediction",
			},
		},
		"required": []any{"score", "classification", "insights"},
	},
}

func classificationEnum() []any {
	all := grading.AllClassifications()
	out := make([]any, len(all))
	for i, c := range all {
		out[i] = string(c)
	}
	return out
}
