package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/scorecast/internal/llm"
	"github.com/abhisek/scorecast/internal/prediction"
)

// oracleFromEnv builds the oracle predictor from the environment. A
// configuration problem is returned as-is so the command fails before any
// record is processed.
func (a *cli) oracleFromEnv(cmd *cobra.Command) (*prediction.OraclePredictor, llm.Config, error) {
	provider, cfg, err := llm.NewProviderFromEnv(cmd.Context(), a.log)
	if err != nil {
		return nil, cfg, err
	}

	dataset, err := prediction.LoadDatasetContext(os.Getenv(envDatasetContext))
	if err != nil {
		return nil, cfg, fmt.Errorf("%s: %w", envDatasetContext, err)
	}

	ocfg := prediction.DefaultOracleConfig()
	ocfg.Timeout = cfg.Timeout
	return prediction.NewOraclePredictor(provider, dataset, ocfg), cfg, nil
}

// newService wires the prediction pipeline. With --offline no oracle is
// built and no API key is needed.
func (a *cli) newService(cmd *cobra.Command) (*prediction.Service, error) {
	opts := []prediction.Option{prediction.WithLogger(a.log)}

	offline, _ := cmd.Flags().GetBool("offline")
	if offline {
		a.log.Info().Msg("offline mode: using the deterministic estimate only")
		return prediction.NewService(nil, opts...), nil
	}

	oracle, cfg, err := a.oracleFromEnv(cmd)
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Str("provider", cfg.Provider).
		Str("model", cfg.ModelName()).
		Dur("timeout", cfg.Timeout).
		Msg("oracle configured")
	return prediction.NewService(oracle, opts...), nil
}
