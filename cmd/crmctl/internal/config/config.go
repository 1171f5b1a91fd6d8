package config

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/beatriciramos/CRM-Frontend/cmd/crmctl/internal/client"
)

type contextKey string

const configKey contextKey = "crmctl-config"

// DefaultServerURL is used when neither flag, environment nor config file
// name a server.
const DefaultServerURL = "http://localhost:3000"

// GlobalConfig holds shared configuration for all crmctl commands.
// It is injected into the cobra command context by the root command's
// PersistentPreRunE hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Verbose        bool
	Logger         *zap.Logger
	ClientProvider *client.Provider
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for use
// in command RunE functions, where the root command has injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("crmctl: config not found in context - this is a bug in crmctl")
	}
	return cfg
}

// fileConfig is the on-disk configuration at ~/.crm/config.yaml.
type fileConfig struct {
	ServerURL string `yaml:"server_url"`
}

func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveServerURL applies the precedence flag > CRM_SERVER env >
// config file > default. flagChanged distinguishes an explicit flag from
// its default value.
func ResolveServerURL(flagValue string, flagChanged bool) string {
	return resolveServerURL(flagValue, flagChanged, defaultConfigPath())
}

func resolveServerURL(flagValue string, flagChanged bool, configPath string) string {
	if flagChanged && flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CRM_SERVER"); env != "" {
		return env
	}
	if configPath != "" {
		if cfg, err := loadFile(configPath); err == nil && cfg.ServerURL != "" {
			return cfg.ServerURL
		}
	}
	if flagValue != "" {
		return flagValue
	}
	return DefaultServerURL
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crm", "config.yaml")
}
