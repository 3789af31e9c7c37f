package cmd

import (
	"github.com/spf13/cobra"
)

func newPredictCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the exam score for one student",
		Long: `Predict the exam score for one student record.

The record comes from the per-field flags or from a JSON/YAML file given with --input.
Every field is required; out-of-range values are rejected.`,
		Example: `  scorecast predict --study-hours 3 --sleep-hours 7 --attendance 85 \
    --social-media 2 --netflix 1 --exercise 3 --diet Fair --mental-health 7 \
    --part-time-job No --extracurricular No
  scorecast predict --input student.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runPredict(cmd)
		},
	}
	addInputFlags(cmd)
	return cmd
}

func (a *cli) runPredict(cmd *cobra.Command) error {
	cand, err := readCandidate(cmd)
	if err != nil {
		return err
	}
	in, err := cand.Normalize()
	if err != nil {
		return err
	}

	svc, err := a.newService(cmd)
	if err != nil {
		return err
	}

	res, err := svc.Predict(cmd.Context(), in)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	return renderResult(cmd.OutOrStdout(), output, res)
}
