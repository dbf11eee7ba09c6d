package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jjenkins/legiscan-relay/internal/handlers"
	"github.com/jjenkins/legiscan-relay/internal/server"
	"github.com/jjenkins/legiscan-relay/internal/service"
)

const shutdownTimeout = 10 * time.Second

var (
	host string
	port int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the LegiScan relay web server",
	Long:  `Start the web server that relays LegiScan API responses.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := loadConfig()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		defer logger.Sync()

		if cmd.Flags().Changed("host") {
			cfg.Server.Host = host
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = port
		}

		client := service.NewLegiScanClient(cfg.LegiScan)
		relay := handlers.NewRelay(client, service.NewValidator(), handlers.Defaults{
			State:     cfg.LegiScan.State,
			SessionID: cfg.LegiScan.SessionID,
			Year:      cfg.LegiScan.Year,
		}, logger)

		app := server.New(relay, server.Options{
			Logger:    logger,
			AccessLog: true,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("starting server", zap.String("addr", cfg.Server.Addr()))
			return app.Listen(cfg.Server.Addr())
		})
		g.Go(func() error {
			<-ctx.Done()
			logger.Info("shutting down server")
			return app.ShutdownWithTimeout(shutdownTimeout)
		})

		if err := g.Wait(); err != nil {
			logger.Fatal("server stopped with error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "", "Host to bind (overrides SERVER_HOST)")
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the server on (overrides SERVER_PORT/PORT)")
}
