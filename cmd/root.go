package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/scorecast/internal/observability"
)

// Environment variables read by the CLI itself. Oracle settings live in llm.
const (
	envLogLevel       = "SCORECAST_LOG_LEVEL"
	envLogFormat      = "SCORECAST_LOG_FORMAT"
	envDatasetContext = "SCORECAST_DATASET_CONTEXT"
	envHTTPAddr       = "SCORECAST_HTTP_ADDR"
)

// Output formats for results.
const (
	outputText = "text"
	outputJSON = "json"
)

// cli holds state shared by every subcommand of one invocation.
type cli struct {
	log      zerolog.Logger
	shutdown observability.ShutdownFunc
}

var rootCmd = newRootCmd()

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	app := &cli{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "scorecast",
		Short: "Predict exam scores from study habits",
		Long: `Scorecast predicts an exam score (0-100), a performance band and a short insight
from ten lifestyle metrics. A generative model acts as the regression engine; when it is
unreachable or returns a malformed reply, a deterministic linear estimate is used instead.`,
		SilenceUsage:       true,
		PersistentPreRunE:  app.setup,
		PersistentPostRunE: app.teardown,
	}

	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides "+envLogLevel+")")
	root.PersistentFlags().String("log-format", "", "Log format: console or json (overrides "+envLogFormat+")")
	root.PersistentFlags().Bool("offline", false, "Skip the oracle and use the deterministic estimate only")
	root.PersistentFlags().StringP("output", "o", outputText, "Result format: text or json")

	root.AddCommand(newPredictCmd(app))
	root.AddCommand(newBatchCmd(app))
	root.AddCommand(newServeCmd(app))
	root.AddCommand(newOracleCmd(app))
	root.AddCommand(newVersionCmd())

	return root
}

// setup loads .env, builds the logger and starts tracing.
func (a *cli) setup(cmd *cobra.Command, args []string) error {
	// A missing .env is normal.
	_ = godotenv.Load()

	logCfg := observability.LogConfig{
		Level:  flagOrEnv(cmd, "log-level", envLogLevel),
		Format: flagOrEnv(cmd, "log-format", envLogFormat),
	}
	log, err := observability.NewLogger(cmd.ErrOrStderr(), logCfg)
	if err != nil {
		return err
	}
	a.log = log

	output, _ := cmd.Flags().GetString("output")
	if output != outputText && output != outputJSON {
		return fmt.Errorf("invalid output format %q (want %s or %s)", output, outputText, outputJSON)
	}

	shutdown, err := observability.InitTracing(cmd.Context(), log,
		observability.TracingConfigFromEnv("scorecast", version))
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	a.shutdown = shutdown
	return nil
}

func (a *cli) teardown(cmd *cobra.Command, args []string) error {
	if a.shutdown == nil {
		return nil
	}
	if err := a.shutdown(cmd.Context()); err != nil {
		a.log.Warn().Err(err).Msg("tracer shutdown failed")
	}
	return nil
}

// flagOrEnv returns the flag value when set on the command line, else the
// environment variable.
func flagOrEnv(cmd *cobra.Command, flag, env string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return os.Getenv(env)
}
