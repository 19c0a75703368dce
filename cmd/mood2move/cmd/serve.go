package cmd

import (
	"fmt"

	"github.com/nfrund/mood2move/internal/app"
	"github.com/nfrund/mood2move/internal/config"
	"github.com/nfrund/mood2move/internal/logging"
	"github.com/nfrund/mood2move/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Runs the web front end. Configuration comes from the environment and an
optional .env file; --api-url overrides API_BASE_URL.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("api-url") {
			cfg.APIBaseURL = apiURL
		}
		logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

		deps, err := app.ResolveDependencies(app.NewInjector(cfg))
		if err != nil {
			return fmt.Errorf("wiring services: %w", err)
		}

		s := server.New(cfg, deps, app.NewModules(deps))
		ctx, stop := server.SignalContext(cmd.Context())
		defer stop()

		if err := s.RegisterRoutes(ctx); err != nil {
			return err
		}
		return s.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
