package prediction

import (
	"context"

	"github.com/abhisek/scorecast/internal/student"
)

// Predictor turns a validated Input into a Result. OraclePredictor and
// FallbackPredictor are the two implementations; the Service picks between
// them.
type Predictor interface {
	Predict(ctx context.Context, in student.Input) (*Result, error)
	Name() string
}
