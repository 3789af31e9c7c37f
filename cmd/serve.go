package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/scorecast/internal/server"
)

func newServeCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runServe(cmd)
		},
	}
	def := server.DefaultConfig()
	cmd.Flags().String("addr", "", "Listen address (overrides "+envHTTPAddr+", default "+def.Addr+")")
	cmd.Flags().StringSlice("allow-origin", nil, "Allowed CORS origins (default: any)")
	cmd.Flags().Int("max-batch", def.MaxBatch, "Maximum records per batch request")
	cmd.Flags().Int("concurrency", def.BatchConcurrency, "Maximum concurrent predictions per batch request")
	return cmd
}

func (a *cli) runServe(cmd *cobra.Command) error {
	svc, err := a.newService(cmd)
	if err != nil {
		return err
	}

	cfg := server.DefaultConfig()
	if addr := flagOrEnv(cmd, "addr", envHTTPAddr); addr != "" {
		cfg.Addr = addr
	}
	cfg.AllowOrigins, _ = cmd.Flags().GetStringSlice("allow-origin")
	cfg.MaxBatch, _ = cmd.Flags().GetInt("max-batch")
	cfg.BatchConcurrency, _ = cmd.Flags().GetInt("concurrency")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(svc, a.log, cfg)
	return server.Run(ctx, router, a.log, cfg)
}
