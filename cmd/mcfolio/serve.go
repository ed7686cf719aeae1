package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/mcfolio/internal/api"
	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the forecast HTTP API",
	Long: `Serve the forecast HTTP API.

Configuration is read from the environment:
  MCFOLIO_PORT             listen port (default 8080)
  MCFOLIO_ENV              development or production
  MCFOLIO_ALLOWED_ORIGINS  comma-separated CORS origins (default *)
  MCFOLIO_SIMULATIONS      paths per request (default 10000)
  MCFOLIO_CURRENCY         currency of the formatted amounts in responses (default USD)
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := config.ParseServerEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}

	engine := calculation.NewEngineWithConfig(calculation.EngineConfig{NumSimulations: cfg.NumSimulations})
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return api.Serve(ctx, cfg, engine)
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (overrides MCFOLIO_PORT)")
	serveCmd.Flags().Bool("debug", false, "Log every simulation run")
}
