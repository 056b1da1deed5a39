package main

import (
	"fmt"
	"os"

	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/logger"
	"github.com/localnerve/articles-api/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Articles API
// @version 1.0.0
// @description Articles, categories, comments and users over relational or document stores
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/articles-api
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by POST /token

// app carries what every subcommand needs once the root has loaded it
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "articles-api",
		Short:         "Articles, categories, comments and users REST service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.cfg = cfg
			a.log = logger.New(logger.Config{Env: cfg.LogEnv, Level: cfg.LogLevel, ServiceName: server.ServiceName})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	serve := a.serveCommand()
	root.AddCommand(serve, a.migrateCommand(), a.routesCommand())
	// serving is the default action
	root.RunE = serve.RunE

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
