// ====================================
// File: cmd/multihub/cmd/serve.go
// ====================================
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rovshanmuradov/multihub-swap/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin HTTP API",
	Long: `Serves the admin REST surface: health probe, in-memory settings with
validated updates, and a read-through view of the on-chain program state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(false)
		if err != nil {
			return err
		}
		defer func() { _ = app.log.Sync() }()

		apiLog := app.log.WithComponent("admin-api")
		handlers := &server.Handlers{
			Settings: server.NewSettingsStore(),
			State:    app.client,
			Logger:   apiLog,
		}
		srv := server.NewServer(app.cfg.AdminListen, handlers)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			apiLog.Info("Admin API listening", zap.String("addr", app.cfg.AdminListen))
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			apiLog.Info("Shutting down admin API")
			return srv.Shutdown(context.Background())
		})

		if err := g.Wait(); err != nil {
			return fmt.Errorf("admin server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
