package prediction

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/student"
)

// Stage is a step of a single prediction.
type Stage string

const (
	StageStart           Stage = "start"
	StageBuildingRequest Stage = "building_request"
	StageCallingOracle   Stage = "calling_oracle"
	StageOracleSucceeded Stage = "oracle_succeeded"
	StageOracleFailed    Stage = "oracle_failed"
	StageFallingBack     Stage = "falling_back"
	StageDone            Stage = "done"
)

// Service runs the prediction pipeline: validate, ask the oracle, fall back
// to the estimator on any oracle failure, assemble the Result.
type Service struct {
	oracle   Predictor
	fallback *FallbackPredictor
	log      zerolog.Logger
	tracer   trace.Tracer
	onStage  func(Stage)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) {
		s.log = log.With().Str("component", "prediction").Logger()
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithWeights replaces the fallback coefficients.
func WithWeights(w Weights) Option {
	return func(s *Service) { s.fallback = NewFallbackPredictor(w) }
}

// WithStageHook registers fn to be called on every stage transition.
func WithStageHook(fn func(Stage)) Option {
	return func(s *Service) { s.onStage = fn }
}

// NewService creates a prediction service. A nil oracle runs in offline
// mode where every prediction comes from the fallback estimator.
func NewService(oracle Predictor, opts ...Option) *Service {
	s := &Service{
		oracle:   oracle,
		fallback: NewFallbackPredictor(DefaultWeights()),
		log:      zerolog.Nop(),
		tracer:   otel.Tracer("github.com/abhisek/scorecast/internal/prediction"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Offline reports whether the service has no oracle.
func (s *Service) Offline() bool {
	return s.oracle == nil
}

// Predict validates in and returns a complete Result. The only error it
// returns is a *student.ValidationError; oracle failures are absorbed by
// the fallback. Cancelling ctx aborts the oracle call, not the fallback.
func (s *Service) Predict(ctx context.Context, in student.Input) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "prediction.predict")
	defer span.End()

	s.enter(span, StageStart)
	if err := in.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}

	var res *Result
	if s.oracle != nil {
		res = s.askOracle(ctx, span, in)
	}

	if res == nil {
		s.enter(span, StageFallingBack)
		res = s.fallback.result(in)
	}

	s.enter(span, StageDone)
	span.SetAttributes(
		attribute.String("prediction.source", string(res.Source)),
		attribute.String("prediction.classification", string(res.Classification)),
		attribute.Float64("prediction.score", res.Score),
	)
	return res, nil
}

// askOracle returns nil when the oracle path failed.
func (s *Service) askOracle(ctx context.Context, span trace.Span, in student.Input) *Result {
	s.enter(span, StageBuildingRequest)
	s.enter(span, StageCallingOracle)

	got, err := s.oracle.Predict(ctx, in)
	if err == nil {
		err = checkComplete(got)
	}
	if err != nil {
		s.enter(span, StageOracleFailed)
		span.RecordError(err)
		s.log.Warn().
			Err(err).
			Str("kind", oracleFailureKind(err)).
			Msg("oracle prediction failed, using fallback estimator")
		return nil
	}

	s.enter(span, StageOracleSucceeded)
	return s.assemble(got)
}

// assemble re-derives the classification from the score. The oracle's own
// band is only kept when it agrees.
func (s *Service) assemble(got *Result) *Result {
	derived := grading.Classify(got.Score)
	res := &Result{
		Score:          got.Score,
		Classification: derived,
		Insights:       got.Insights,
		Source:         SourceOracle,
		Model:          got.Model,
	}
	if derived != got.Classification {
		res.Reclassified = true
		s.log.Warn().
			Float64("score", got.Score).
			Str("reported", string(got.Classification)).
			Str("derived", string(derived)).
			Msg("oracle classification disagrees with score band")
	}
	return res
}

func (s *Service) enter(span trace.Span, stage Stage) {
	span.AddEvent(string(stage))
	if s.onStage != nil {
		s.onStage(stage)
	}
}

func checkComplete(r *Result) error {
	switch {
	case r == nil:
		return &ErrOracleContract{Err: errors.New("no result")}
	case !r.Classification.Valid():
		return &ErrOracleContract{Err: errors.New("invalid classification")}
	case r.Insights == "":
		return &ErrOracleContract{Err: errors.New("empty insights")}
	}
	return nil
}

func oracleFailureKind(err error) string {
	var contract *ErrOracleContract
	if errors.As(err, &contract) {
		return "contract"
	}
	return "unavailable"
}
