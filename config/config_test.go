package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/friendnet/crypto"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wonderlandYAML = `
log_level: debug
lossiness: 0.25
keys:
  prime_low: 200
  prime_high: 900
network:
  people:
    - id: alice
      name: Alice
    - id: hatter
      name: Mad Hatter
    - id: cheshire
  friendships:
    - [alice, hatter]
    - [hatter, cheshire]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, crypto.DefaultKeyOptions(), cfg.KeyOptions())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(writeFile(t, "friendnet.yaml", wonderlandYAML))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0.25, cfg.Lossiness)
	assert.Equal(t, int64(200), cfg.Keys.PrimeLow)
	assert.Equal(t, int64(900), cfg.Keys.PrimeHigh)
	assert.Equal(t, int64(crypto.DefaultPublicExponent), cfg.Keys.PublicExponent, "unset keys keep defaults")
	assert.Len(t, cfg.Network.People, 3)
	assert.Equal(t, [][2]string{{"alice", "hatter"}, {"hatter", "cheshire"}}, cfg.Network.Friendships)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "keys: [1, 2"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(mapLookup(map[string]string{
		EnvLogLevel:  "warn",
		EnvPrimeLow:  "1000",
		EnvPrimeHigh: "2000",
		EnvLossiness: "0.75",
	}))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(1000), cfg.Keys.PrimeLow)
	assert.Equal(t, int64(2000), cfg.Keys.PrimeHigh)
	assert.Equal(t, 0.75, cfg.Lossiness)
}

func TestApplyEnvInvalid(t *testing.T) {
	for _, key := range []string{EnvPrimeLow, EnvPrimeHigh, EnvLossiness} {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(mapLookup(map[string]string{key: "many"}))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadEnvDotenv(t *testing.T) {
	t.Setenv(EnvLossiness, "0.1")
	// godotenv.Load leaves existing variables alone.
	dotenv := writeFile(t, ".env", EnvLossiness+"=0.9\n"+EnvPrimeHigh+"=700\n")
	t.Cleanup(func() { os.Unsetenv(EnvPrimeHigh) })

	cfg := Default()
	require.NoError(t, cfg.LoadEnv(dotenv))
	assert.Equal(t, 0.1, cfg.Lossiness)
	assert.Equal(t, int64(700), cfg.Keys.PrimeHigh)
}

func TestLoadEnvMissingDotenv(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.LoadEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"prime range", func(c *Config) { c.Keys.PrimeLow, c.Keys.PrimeHigh = 500, 100 }},
		{"prime low below two", func(c *Config) { c.Keys.PrimeLow = math.MinInt64 }},
		{"exponent", func(c *Config) { c.Keys.PublicExponent = 4 }},
		{"lossiness", func(c *Config) { c.Lossiness = 1.5 }},
		{"duplicate person", func(c *Config) {
			c.Network.People = []PersonConfig{{ID: "alice"}, {ID: "alice"}}
		}},
		{"unknown friend", func(c *Config) {
			c.Network.People = []PersonConfig{{ID: "alice"}}
			c.Network.Friendships = [][2]string{{"alice", "queen"}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestBuildNetwork(t *testing.T) {
	cfg, err := Load(writeFile(t, "friendnet.yaml", wonderlandYAML))
	require.NoError(t, err)

	n, err := cfg.BuildNetwork()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "cheshire", "hatter"}, n.People())
	assert.Equal(t, []string{"alice", "hatter", "cheshire"}, n.FindPath("alice", "cheshire"))

	hatter, ok := n.GetPerson("hatter")
	require.True(t, ok)
	assert.Equal(t, "Mad Hatter", hatter.Name())

	cheshire, ok := n.GetPerson("cheshire")
	require.True(t, ok)
	assert.Equal(t, "cheshire", cheshire.Name(), "missing names fall back to the id")
}

func TestBuildNetworkInvalid(t *testing.T) {
	cfg := Default()
	cfg.Network.Friendships = [][2]string{{"alice", "hatter"}}
	_, err := cfg.BuildNetwork()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDemoNetwork(t *testing.T) {
	cfg := Default()
	cfg.Network = DemoNetwork()

	n, err := cfg.BuildNetwork()
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "hatter", "cheshire"}, n.FindPath("alice", "cheshire"))
}
