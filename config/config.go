// Package config loads the friendnet CLI configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/opd-ai/friendnet/compress"
	"github.com/opd-ai/friendnet/crypto"
	"github.com/opd-ai/friendnet/friend"
	"github.com/sirupsen/logrus"
)

// Environment variables that override file values.
const (
	EnvLogLevel  = "FRIENDNET_LOG_LEVEL"
	EnvPrimeLow  = "FRIENDNET_PRIME_LOW"
	EnvPrimeHigh = "FRIENDNET_PRIME_HIGH"
	EnvLossiness = "FRIENDNET_LOSSINESS"
)

// ErrInvalidConfig is returned for configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string        `yaml:"log_level" json:"log_level"`
	Keys      KeyConfig     `yaml:"keys" json:"keys"`
	Lossiness float64       `yaml:"lossiness" json:"lossiness"`
	Network   NetworkConfig `yaml:"network" json:"network"`
}

type KeyConfig struct {
	PrimeLow       int64 `yaml:"prime_low" json:"prime_low"`
	PrimeHigh      int64 `yaml:"prime_high" json:"prime_high"`
	PublicExponent int64 `yaml:"public_exponent" json:"public_exponent"`
	MaxAttempts    int   `yaml:"max_attempts" json:"max_attempts"`
}

type NetworkConfig struct {
	People      []PersonConfig `yaml:"people" json:"people"`
	Friendships [][2]string    `yaml:"friendships" json:"friendships"`
}

type PersonConfig struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Default returns a configuration with library defaults and an empty
// network.
func Default() *Config {
	k := crypto.DefaultKeyOptions()
	return &Config{
		LogLevel: logrus.InfoLevel.String(),
		Keys: KeyConfig{
			PrimeLow:       k.PrimeLow,
			PrimeHigh:      k.PrimeHigh,
			PublicExponent: k.PublicExponent,
			MaxAttempts:    k.MaxAttempts,
		},
		Lossiness: compress.DefaultLossiness,
	}
}

// DemoNetwork is the three-person chain used when no people are configured.
func DemoNetwork() NetworkConfig {
	return NetworkConfig{
		People: []PersonConfig{
			{ID: "alice", Name: "Alice"},
			{ID: "hatter", Name: "Hatter"},
			{ID: "cheshire", Name: "Cheshire"},
		},
		Friendships: [][2]string{
			{"alice", "hatter"},
			{"hatter", "cheshire"},
		},
	}
}

// Load reads path on top of Default(). An empty path yields the defaults.
// Environment overrides are not applied; see LoadEnv.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"path":     path,
		"people":   len(cfg.Network.People),
	}).Debug("Config file loaded")

	return cfg, nil
}

// LoadEnv loads dotenv (if it exists) into the process environment and then
// applies the FRIENDNET_* overrides to c. Variables already set in the
// environment win over the dotenv file.
func (c *Config) LoadEnv(dotenv string) error {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				return fmt.Errorf("failed to load %s: %w", dotenv, err)
			}
		}
	}
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrimeLow); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvPrimeLow, v, err)
		}
		c.Keys.PrimeLow = n
	}
	if v, ok := lookup(EnvPrimeHigh); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvPrimeHigh, v, err)
		}
		c.Keys.PrimeHigh = n
	}
	if v, ok := lookup(EnvLossiness); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvLossiness, v, err)
		}
		c.Lossiness = f
	}
	return nil
}

// KeyOptions converts the key section to library options.
func (c *Config) KeyOptions() crypto.KeyOptions {
	return crypto.KeyOptions{
		PrimeLow:       c.Keys.PrimeLow,
		PrimeHigh:      c.Keys.PrimeHigh,
		PublicExponent: c.Keys.PublicExponent,
		MaxAttempts:    c.Keys.MaxAttempts,
	}
}

// Level parses the configured log level.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Validate checks every field without building anything.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.KeyOptions().Validate(); err != nil {
		return fmt.Errorf("%w: keys: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Lossiness) || c.Lossiness < 0 || c.Lossiness > 1 {
		return fmt.Errorf("%w: lossiness %v outside [0, 1]", ErrInvalidConfig, c.Lossiness)
	}

	seen := make(map[string]bool, len(c.Network.People))
	for _, p := range c.Network.People {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate person %q", ErrInvalidConfig, p.ID)
		}
		seen[p.ID] = true
	}
	for _, f := range c.Network.Friendships {
		for _, id := range f {
			if !seen[id] {
				return fmt.Errorf("%w: friendship %q - %q names unknown person %q", ErrInvalidConfig, f[0], f[1], id)
			}
		}
	}
	return nil
}

// BuildNetwork validates c and constructs its network.
func (c *Config) BuildNetwork(opts ...friend.Option) (*friend.Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := friend.NewNetwork(opts...)
	for _, p := range c.Network.People {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		if _, err := n.AddPerson(p.ID, name); err != nil {
			return nil, err
		}
	}
	for _, f := range c.Network.Friendships {
		if err := n.AddFriendship(f[0], f[1]); err != nil {
			return nil, err
		}
	}
	return n, nil
}
