package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider is a decorator that writes one structured log line per
// request. Prompts and raw replies are only logged at debug level.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{
		inner: p,
		log:   log.With().Str("component", "llm").Logger(),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	l.log.Debug().
		Str("request_id", RequestIDFrom(ctx)).
		Str("request", serializeRequest(req)).
		Msg("llm request")

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)
	model := l.inner.ModelID()
	if resp != nil && resp.Model != "" {
		model = resp.Model
	}

	var ev *zerolog.Event
	if err != nil {
		ev = l.log.Warn().Err(err)
	} else {
		ev = l.log.Info()
	}
	ev = ev.
		Str("request_id", RequestIDFrom(ctx)).
		Str("purpose", PurposeFrom(ctx)).
		Str("model", model).
		Int64("latency_ms", latency.Milliseconds()).
		Bool("success", err == nil)

	if resp != nil {
		ev = ev.
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens)
		if cost := LookupCost(model); cost != nil {
			ev = ev.Float64("cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}
	ev.Msg("llm request completed")

	if resp != nil {
		l.log.Debug().
			Str("request_id", RequestIDFrom(ctx)).
			RawJSON("response", compactJSON(resp.Content)).
			Msg("llm response")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// compactJSON returns raw if it is valid JSON, otherwise the content quoted
// as a JSON string so the log line stays parseable.
func compactJSON(raw json.RawMessage) []byte {
	if json.Valid(raw) {
		return raw
	}
	quoted, _ := json.Marshal(string(raw))
	return quoted
}
