package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/llm"
	"github.com/abhisek/scorecast/internal/student"
)

// OracleConfig holds per-call settings for the oracle.
type OracleConfig struct {
	// Timeout bounds one oracle call. Zero means the caller's context is
	// the only bound.
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// DefaultOracleConfig returns sensible defaults.
func DefaultOracleConfig() OracleConfig {
	return OracleConfig{
		Timeout:   llm.DefaultOracleTimeout,
		MaxTokens: 512,
	}
}

// OraclePredictor asks a generative model to act as the regression engine.
// It makes exactly one attempt per call.
type OraclePredictor struct {
	provider llm.Provider
	dataset  string
	cfg      OracleConfig
}

// NewOraclePredictor creates an oracle-backed predictor. dataset is the
// reference context embedded in every prompt.
func NewOraclePredictor(provider llm.Provider, dataset string, cfg OracleConfig) *OraclePredictor {
	return &OraclePredictor{provider: provider, dataset: dataset, cfg: cfg}
}

// Name identifies the predictor in logs.
func (o *OraclePredictor) Name() string { return "oracle" }

// Predict returns *ErrOracleUnavailable for transport failures and
// *ErrOracleContract when the reply has the wrong shape.
func (o *OraclePredictor) Predict(ctx context.Context, in student.Input) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "score-prediction")
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	req, err := BuildRequest(in, o.dataset, o.cfg)
	if err != nil {
		return nil, err
	}

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return nil, mapProviderError(err)
	}

	out, err := decodeOracleReply(resp.Content)
	if err != nil {
		return nil, err
	}

	return &Result{
		Score:          out.score,
		Classification: out.classification,
		Insights:       out.insights,
		Source:         SourceOracle,
		Model:          resp.Model,
	}, nil
}

type oracleReply struct {
	score          float64
	classification grading.Classification
	insights       string
}

// decodeOracleReply enforces the contract regardless of what the provider
// already checked.
func decodeOracleReply(content json.RawMessage) (*oracleReply, error) {
	if err := llm.ValidateResponse(PredictionSchema, content); err != nil {
		return nil, &ErrOracleContract{Content: content, Err: err}
	}

	var raw struct {
		Score          *float64 `json:"score"`
		Classification *string  `json:"classification"`
		Insights       *string  `json:"insights"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &ErrOracleContract{Content: content, Err: fmt.Errorf("decode reply: %w", err)}
	}

	switch {
	case raw.Score == nil:
		return nil, &ErrOracleContract{Content: content, Err: errors.New("missing score")}
	case raw.Classification == nil:
		return nil, &ErrOracleContract{Content: content, Err: errors.New("missing classification")}
	case raw.Insights == nil:
		return nil, &ErrOracleContract{Content: content, Err: errors.New("missing insights")}
	}

	class, err := grading.ParseClassification(*raw.Classification)
	if err != nil {
		return nil, &ErrOracleContract{Content: content, Err: err}
	}

	insights := strings.TrimSpace(*raw.Insights)
	if insights == "" {
		return nil, &ErrOracleContract{Content: content, Err: errors.New("empty insights")}
	}

	return &oracleReply{score: *raw.Score, classification: class, insights: insights}, nil
}

func mapProviderError(err error) error {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return &ErrOracleContract{Content: invalid.Content, Err: err}
	}
	return &ErrOracleUnavailable{Err: err}
}
