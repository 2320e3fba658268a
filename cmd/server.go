package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/server"
	"github.com/viktools/viktools/internal/web"
)

var (
	serverHost string
	serverPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the web toolbox",
	Long:  `Starts the HTTP server hosting the toolbox page, its JSON API and the websocket the page runs operations over. Notifications and their dismissals are pushed over the same socket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		lifetime, err := cfg.NotificationLifetime()
		if err != nil {
			return err
		}

		srvCfg := server.Config{
			Host:     cfg.Server.Host,
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}
		if cmd.Flags().Changed("host") {
			srvCfg.Host = serverHost
		}
		if cmd.Flags().Changed("port") {
			srvCfg.Port = serverPort
		}

		srv := server.New(srvCfg, logger)
		web.New(tb, web.Options{Lifetime: lifetime, Logger: logger}).RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", "error", err)
			}
		}()

		logger.Info("viktools server starting", "version", Version, "addr", srvCfg.Addr())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().StringVar(&serverHost, "host", "", "Host to bind (overrides server.host)")
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
