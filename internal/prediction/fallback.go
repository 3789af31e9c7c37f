package prediction

import (
	"context"
	"math"

	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/student"
)

// FallbackInsight is returned with every fallback result so callers can
// tell it apart from an oracle explanation.
const FallbackInsight = "Score calculated using standard linear regression weights based on offline dataset parameters."

// Weights are the fixed coefficients of the fallback estimator. Fields not
// listed here do not affect the estimate.
type Weights struct {
	Attendance  float64
	StudyHours  float64
	SleepHours  float64
	SocialMedia float64
}

// DefaultWeights returns the standard coefficients.
func DefaultWeights() Weights {
	return Weights{
		Attendance:  0.4,
		StudyHours:  5,
		SleepHours:  2,
		SocialMedia: -2,
	}
}

// Raw returns the unclamped linear combination.
func (w Weights) Raw(in student.Input) float64 {
	return in.AttendancePercentage*w.Attendance +
		in.StudyHoursPerDay*w.StudyHours +
		in.SleepHours*w.SleepHours +
		in.SocialMediaHours*w.SocialMedia
}

// Estimate clamps Raw to [0, 100] and rounds to one decimal, halves away
// from zero.
func (w Weights) Estimate(in student.Input) float64 {
	score := math.Min(100, math.Max(0, w.Raw(in)))
	return math.Round(score*10) / 10
}

// Estimate scores in with DefaultWeights.
func Estimate(in student.Input) float64 {
	return DefaultWeights().Estimate(in)
}

// FallbackPredictor is the deterministic estimator. It never fails.
type FallbackPredictor struct {
	weights Weights
}

// NewFallbackPredictor creates a fallback predictor with the given weights.
func NewFallbackPredictor(w Weights) *FallbackPredictor {
	return &FallbackPredictor{weights: w}
}

// Name identifies the predictor in logs.
func (f *FallbackPredictor) Name() string { return "fallback" }

// Predict computes the estimate. The context is ignored.
func (f *FallbackPredictor) Predict(_ context.Context, in student.Input) (*Result, error) {
	return f.result(in), nil
}

func (f *FallbackPredictor) result(in student.Input) *Result {
	score := f.weights.Estimate(in)
	return &Result{
		Score:          score,
		Classification: grading.Classify(score),
		Insights:       FallbackInsight,
		Source:         SourceFallback,
	}
}
