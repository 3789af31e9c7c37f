package prediction

import "github.com/abhisek/scorecast/internal/grading"

// Source records which path produced a Result.
type Source string

const (
	SourceOracle   Source = "oracle"
	SourceFallback Source = "fallback"
)

// Result is a finished prediction. It is built once by the Service and not
// modified afterwards.
type Result struct {
	Score          float64                `json:"score" yaml:"score"`
	Classification grading.Classification `json:"classification" yaml:"classification"`
	Insights       string                 `json:"insights" yaml:"insights"`

	Source       Source `json:"source" yaml:"source"`
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`
	Reclassified bool   `json:"reclassified,omitempty" yaml:"reclassified,omitempty"`
}
