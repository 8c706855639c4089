package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/claude/gymez/internal/strength"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Auth       AuthConfig       `yaml:"auth"`
	Tailscale  TailscaleConfig  `yaml:"tailscale"`
	Calculator CalculatorConfig `yaml:"calculator"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig guards the HTTP API. An empty APIKey leaves it open.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type CalculatorConfig struct {
	Formula string `yaml:"formula"`
}

// DefaultFormula returns the configured formula, Epley when unset.
func (c CalculatorConfig) DefaultFormula() (strength.Formula, error) {
	if c.Formula == "" {
		return strength.Epley, nil
	}
	return strength.ParseFormula(c.Formula)
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Env vars use the prefix GYMEZ_ and underscore-separated paths:
//
//	GYMEZ_SERVER_HOST, GYMEZ_SERVER_PORT, GYMEZ_AUTH_API_KEY,
//	GYMEZ_TAILSCALE_ENABLED, GYMEZ_TAILSCALE_HOSTNAME, GYMEZ_TAILSCALE_STATE_DIR,
//	GYMEZ_CALCULATOR_FORMULA
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GYMEZ_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("GYMEZ_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GYMEZ_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("GYMEZ_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("GYMEZ_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("GYMEZ_TAILSCALE_STATE_DIR"); v != "" {
		cfg.Tailscale.StateDir = v
	}
	if v := os.Getenv("GYMEZ_CALCULATOR_FORMULA"); v != "" {
		cfg.Calculator.Formula = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if _, err := c.Calculator.DefaultFormula(); err != nil {
		return fmt.Errorf("calculator.formula: %w", err)
	}
	return nil
}
