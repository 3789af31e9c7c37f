package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/scorecast/internal/llm"
	"github.com/abhisek/scorecast/internal/prediction"
	"github.com/abhisek/scorecast/internal/student"
)

func newOracleCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Inspect and test the oracle",
	}
	cmd.AddCommand(newOraclePromptCmd(app))
	cmd.AddCommand(newOracleCheckCmd(app))
	cmd.AddCommand(newOracleModelsCmd())
	return cmd
}

func newOraclePromptCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the request that would be sent to the oracle",
		Long: `Print the system prompt, user message and reply schema for a record without
calling the oracle. With no record flags the standard student profile is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runOraclePrompt(cmd)
		},
	}
	addInputFlags(cmd)
	return cmd
}

func (a *cli) runOraclePrompt(cmd *cobra.Command) error {
	in := student.Default()
	if path, _ := cmd.Flags().GetString(flagInput); path != "" || anyFieldFlagSet(cmd) {
		cand, err := readCandidate(cmd)
		if err != nil {
			return err
		}
		if in, err = cand.Normalize(); err != nil {
			return err
		}
	}

	dataset, err := prediction.LoadDatasetContext(os.Getenv(envDatasetContext))
	if err != nil {
		return err
	}
	req, err := prediction.BuildRequest(in, dataset, prediction.DefaultOracleConfig())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output, _ := cmd.Flags().GetString("output")
	if output == outputJSON {
		return writeJSON(out, req)
	}

	sep := strings.Repeat("─", 60)
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, "SYSTEM")
	fmt.Fprintln(out, sep)
	fmt.Fprintln(out, req.System)
	for _, m := range req.Messages {
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, strings.ToUpper(string(m.Role)))
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, m.Content)
	}
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "SCHEMA (%s)\n", req.Schema.Name)
	fmt.Fprintln(out, sep)
	schema, err := json.MarshalIndent(req.Schema.Definition, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	fmt.Fprintln(out, string(schema))
	return nil
}

func newOracleCheckCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Send the standard student to the oracle and report the raw outcome",
		Long: `Send the standard student profile to the configured oracle, without the
fallback, and report whether the reply honoured the contract.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runOracleCheck(cmd)
		},
	}
}

func (a *cli) runOracleCheck(cmd *cobra.Command) error {
	oracle, cfg, err := a.oracleFromEnv(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Provider:  %s\n", cfg.Provider)
	fmt.Fprintf(out, "Model:     %s\n", cfg.ModelName())
	fmt.Fprintf(out, "Timeout:   %s\n", cfg.Timeout)

	start := time.Now()
	res, err := oracle.Predict(llm.WithRequestID(cmd.Context(), ""), student.Default())
	fmt.Fprintf(out, "Latency:   %dms\n", time.Since(start).Milliseconds())

	var contractErr *prediction.ErrOracleContract
	switch {
	case errors.As(err, &contractErr):
		fmt.Fprintln(out, "Status:    contract violation")
		if len(contractErr.Content) > 0 {
			fmt.Fprintf(out, "Reply:     %s\n", contractErr.Content)
		}
		return err
	case err != nil:
		fmt.Fprintln(out, "Status:    unavailable")
		return err
	}

	fmt.Fprintln(out, "Status:    ok")
	fmt.Fprintln(out)
	output, _ := cmd.Flags().GetString("output")
	return renderResult(out, output, res)
}

func newOracleModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models with known pricing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			costs := llm.PricedModels()
			ids := make([]string, 0, len(costs))
			for id := range costs {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-32s  %12s  %12s  %12s\n", "Model", "In $/MTok", "Out $/MTok", "Per call")
			fmt.Fprintln(out, strings.Repeat("─", 74))
			for _, id := range ids {
				c := costs[id]
				fmt.Fprintf(out, "%-32s  %12.3f  %12.3f  %12s\n",
					truncate(id, 32), c.InputPerMTok, c.OutputPerMTok,
					formatCost(c.Cost(typicalInputTokens, typicalOutputTokens)))
			}
			fmt.Fprintf(out, "\nPer call assumes %d input and %d output tokens.\n",
				typicalInputTokens, typicalOutputTokens)
			return nil
		},
	}
}

// Rough size of one prediction exchange with the embedded dataset context.
const (
	typicalInputTokens  = 1200
	typicalOutputTokens = 150
)

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
