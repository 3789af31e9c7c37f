package prediction

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/llm"
	"github.com/abhisek/scorecast/internal/student"
)

const systemPrompt = `Act strictly as a statistical regression algorithm. Do NOT mention that you are an AI, a language model, or any named model.

You receive a dataset (CSV) of student lifestyle metrics with their final exam scores, and the metrics of one new student. Perform a regression over the dataset and predict the new student's exam_score.

Rules:
- The score is a number between 0 and 100.
- The classification must follow the grading bands you are given, exactly.
- The insight is one or two sentences of formal, analytical language that refers to the variables driving the score.
- Return strictly JSON. No prose outside the JSON object.`

type promptData struct {
	Dataset   string
	In        student.Input
	Excellent float64
	Good      float64
	Average   float64
}

var userTemplate = template.Must(template.New("prediction").Parse(`DATASET CONTEXT:
{{.Dataset}}

NEW STUDENT INPUT:
Study Hours: {{.In.StudyHoursPerDay}}
Sleep Hours: {{.In.SleepHours}}
Attendance %: {{.In.AttendancePercentage}}
Social Media Hours: {{.In.SocialMediaHours}}
Netflix Hours: {{.In.NetflixHours}}
Exercise Frequency (days/week): {{.In.ExerciseFrequency}}
Diet Quality: {{.In.DietQuality}}
Mental Health (1-10): {{.In.MentalHealthRating}}
Part Time Job: {{.In.PartTimeJob}}
Extracurriculars: {{.In.ExtracurricularParticipation}}

INSTRUCTIONS:
1. Calculate a predicted exam score (0-100) from the input and the trends in the dataset.
2. Classify the performance:
   - Excellent (Score >= {{.Excellent}})
   - Good (Score >= {{.Good}})
   - Average (Score >= {{.Average}})
   - Weak (Score < {{.Average}})
3. Provide a short, data-driven insight explaining the score (e.g. "Positive correlation observed with study hours...").
`))

// BuildRequest renders the oracle request for in. The same input and
// dataset always produce the same request.
func BuildRequest(in student.Input, dataset string, cfg OracleConfig) (llm.Request, error) {
	var buf bytes.Buffer
	err := userTemplate.Execute(&buf, promptData{
		Dataset:   dataset,
		In:        in,
		Excellent: grading.ExcellentThreshold,
		Good:      grading.GoodThreshold,
		Average:   grading.AverageThreshold,
	})
	if err != nil {
		return llm.Request{}, fmt.Errorf("render prediction prompt: %w", err)
	}

	return llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      PredictionSchema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}, nil
}
