package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/localnerve/articles-api/internal/database"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web host",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := database.OpenStore(ctx, a.cfg, a.log)
			if err != nil {
				return err
			}
			defer closeStore(store, a.log)

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			fiberApp := server.New(a.cfg, store, a.log, reg)

			// Graceful shutdown
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sig
				a.log.Info("Gracefully shutting down...")
				_ = fiberApp.ShutdownWithTimeout(shutdownTimeout)
			}()

			a.log.Info("Starting server", zap.String("port", a.cfg.Port), zap.String("store", store.Kind))
			if err := fiberApp.Listen(":" + a.cfg.Port); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			a.log.Info("Server stopped")
			return nil
		},
	}
}

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, indexes and sequences for the configured store, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := database.OpenStore(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			closeStore(store, a.log)
			a.log.Info("Store is ready", zap.String("store", store.Kind))
			return nil
		},
	}
}

func (a *app) routesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the web host routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fiberApp := server.New(a.cfg, &repository.Store{}, zap.NewNop(), prometheus.NewRegistry())

			routes := fiberApp.GetRoutes(true)
			sort.SliceStable(routes, func(i, j int) bool {
				if routes[i].Path == routes[j].Path {
					return routes[i].Method < routes[j].Method
				}
				return routes[i].Path < routes[j].Path
			})

			out := cmd.OutOrStdout()
			for _, r := range routes {
				if r.Method == "HEAD" {
					continue
				}
				fmt.Fprintf(out, "%-7s %s\n", r.Method, r.Path)
			}
			return nil
		},
	}
}

func closeStore(store *repository.Store, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		log.Warn("Failed to close store", zap.Error(err))
	}
}
