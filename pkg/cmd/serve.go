package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yasameenmsa/talentvault/pkg/app"
	"github.com/yasameenmsa/talentvault/pkg/log"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "start the HTTP server",
	Aliases: []string{"server", "run"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a := app.NewApp(configPath)

		errCh := make(chan error, 1)

		go func() {
			errCh <- a.Run()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			log.Logger().Info().Str("signal", sig.String()).Msg("Shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return a.Shutdown(ctx)
		}
	},
}

// registerServeCommands 注册服务相关命令.
func registerServeCommands() {
	rootCmd.AddCommand(serveCmd)
}
