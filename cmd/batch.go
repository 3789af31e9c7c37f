package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/scorecast/internal/prediction"
	"github.com/abhisek/scorecast/internal/student"
)

// batchRecord is one line of batch output.
type batchRecord struct {
	Index  int                `json:"index"`
	Result *prediction.Result `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
	Field  string             `json:"field,omitempty"`
}

func newBatchCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Predict scores for every record in a JSON or YAML file",
		Long: `Predict scores for many records at once.

The file holds a list of records, or an object with an "inputs" list. YAML is used for
.yaml/.yml files and JSON otherwise; "-" reads JSON from stdin. A bad record fails on its
own and does not stop the others.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runBatch(cmd, args[0])
		},
	}
	cmd.Flags().IntP("concurrency", "c", prediction.DefaultBatchConcurrency, "Maximum concurrent predictions")
	return cmd
}

func (a *cli) runBatch(cmd *cobra.Command, path string) error {
	candidates, err := readCandidates(cmd, path)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("%s contains no records", path)
	}

	svc, err := a.newService(cmd)
	if err != nil {
		return err
	}

	concurrency, _ := cmd.Flags().GetInt("concurrency")
	items := svc.PredictBatch(cmd.Context(), candidates, concurrency)

	records := make([]batchRecord, len(items))
	failed := 0
	for i, item := range items {
		records[i] = batchRecord{Index: item.Index, Result: item.Result}
		if item.Err != nil {
			failed++
			records[i].Error = item.Err.Error()
			var verr *student.ValidationError
			if errors.As(item.Err, &verr) {
				records[i].Field = verr.Field
			}
		}
	}

	output, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()
	if output == outputJSON {
		if err := writeJSON(out, records); err != nil {
			return err
		}
	} else {
		for _, r := range records {
			if r.Error != "" {
				fmt.Fprintf(out, "#%d  %s\n", r.Index, r.Error)
				continue
			}
			fmt.Fprintf(out, "#%d  %5.1f  %-9s  %s\n",
				r.Index, r.Result.Score, r.Result.Classification, r.Result.Source)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed validation", failed, len(records))
	}
	return nil
}
