package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ganot/portico/internal/web"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio dashboard over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			router := web.NewRouter(app.snapshots, app.logger, app.cfg.Cache.TTL())

			addr := fmt.Sprintf("%s:%d", app.cfg.Server.Host, app.cfg.Server.Port)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: router,
			}

			go func() {
				app.logger.Info("server listening", "addr", addr, "db", app.cfg.DB.Path)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					app.logger.Error("server error", "error", err)
				}
			}()

			waitForShutdown(app, httpServer)
			return nil
		},
	}
}

func waitForShutdown(app *app, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	app.logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		app.logger.Error("shutdown error", "error", err)
	}
}
