package prediction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/scorecast/internal/student"
)

// DefaultBatchConcurrency caps in-flight oracle calls for a batch.
const DefaultBatchConcurrency = 4

// BatchItem is the outcome for one record of a batch. Exactly one of Result
// and Err is set.
type BatchItem struct {
	Index  int
	Result *Result
	Err    error
}

// PredictBatch normalizes and predicts every candidate independently. A bad
// record only fails its own item. Items come back in input order.
func (s *Service) PredictBatch(ctx context.Context, candidates []student.Candidate, concurrency int) []BatchItem {
	if concurrency < 1 {
		concurrency = DefaultBatchConcurrency
	}

	items := make([]BatchItem, len(candidates))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, c := range candidates {
		g.Go(func() error {
			items[i].Index = i
			in, err := c.Normalize()
			if err != nil {
				items[i].Err = err
				return nil
			}
			items[i].Result, items[i].Err = s.Predict(ctx, in)
			return nil
		})
	}
	_ = g.Wait()

	s.log.Debug().Int("count", len(candidates)).Msg("batch prediction finished")
	return items
}
