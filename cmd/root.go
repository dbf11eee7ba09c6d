package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jjenkins/legiscan-relay/internal/config"
	"github.com/jjenkins/legiscan-relay/internal/logging"
)

var (
	configFile string
	envFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "legiscan-relay",
	Short: "Relay a subset of the LegiScan API as local REST endpoints",
	Long: `legiscan-relay forwards requests to the LegiScan legislative data API,
checks that each response has the expected JSON shape, and relays the
original response text to the caller.

The LegiScan API key is read once at startup from LEGISCAN_API_KEY (or
API_KEY), optionally via a local .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Developer .env file (ignored if missing)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
}

// loadConfig loads configuration and builds the logger. Any error here is fatal
// for the calling command.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		EnvFile:    envFile,
	})
	if err != nil {
		return nil, nil, err
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	logger.Info("configuration loaded",
		zap.String("base_url", cfg.LegiScan.BaseURL),
		zap.Duration("timeout", cfg.LegiScan.Timeout),
		zap.String("state", cfg.LegiScan.State),
		zap.Uint32("session_id", cfg.LegiScan.SessionID),
		zap.Int("year", cfg.LegiScan.Year),
		zap.Bool("api_key_present", cfg.LegiScan.APIKey != ""))

	return cfg, logger, nil
}
