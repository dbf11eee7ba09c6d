package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	DefaultBaseURL   = "https://api.legiscan.com/"
	DefaultTimeout   = 30 * time.Second
	DefaultState     = "IN"
	DefaultSessionID = 2143
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8080
	DefaultEnvFile   = ".env"
)

// LoadOptions points Load at optional files. Empty fields are skipped.
type LoadOptions struct {
	// ConfigFile is a YAML file with the same keys as Config.
	ConfigFile string
	// EnvFile is a dotenv file merged into the process environment. Variables
	// already set in the environment win.
	EnvFile string
}

var envBindings = []struct {
	key  string
	envs []string
}{
	{"legiscan.api_key", []string{"LEGISCAN_API_KEY", "API_KEY"}},
	{"legiscan.base_url", []string{"LEGISCAN_BASE_URL"}},
	{"legiscan.timeout", []string{"LEGISCAN_TIMEOUT"}},
	{"legiscan.state", []string{"LEGISCAN_STATE"}},
	{"legiscan.session_id", []string{"LEGISCAN_SESSION_ID"}},
	{"legiscan.year", []string{"LEGISCAN_YEAR"}},
	{"server.host", []string{"SERVER_HOST"}},
	{"server.port", []string{"SERVER_PORT", "PORT"}},
	{"log.level", []string{"LOG_LEVEL"}},
}

// Load reads configuration and validates it. A missing API key is an error;
// callers treat any error here as fatal.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := gotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()

	v.SetDefault("legiscan.base_url", DefaultBaseURL)
	v.SetDefault("legiscan.timeout", DefaultTimeout)
	v.SetDefault("legiscan.state", DefaultState)
	v.SetDefault("legiscan.session_id", DefaultSessionID)
	v.SetDefault("legiscan.year", time.Now().Year())
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("log.level", "info")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	for _, b := range envBindings {
		args := append([]string{b.key}, b.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", b.envs[0], err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.LegiScan.State = strings.ToUpper(strings.TrimSpace(cfg.LegiScan.State))
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", describe(err))
	}

	return &cfg, nil
}

// describe turns validator errors into messages that name the config key
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.StructNamespace() {
		case "Config.LegiScan.APIKey":
			msgs = append(msgs, "legiscan.api_key is required (set LEGISCAN_API_KEY or API_KEY)")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %q check", fe.StructNamespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
