package main

import (
	"fmt"

	"github.com/opd-ai/friendnet/config"
	"github.com/opd-ai/friendnet/friend"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

// app holds state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	dotenvPath string
	logLevel   string
	logJSON    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "friendnet",
		Short: "Route messages through a network of friends",
		Long: `friendnet simulates message delivery over a social graph. Messages
travel along the shortest chain of friendships and may be sent as plain text,
RSA-encrypted for the receiver, or lossily FFT-compressed.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")
	root.PersistentFlags().StringVar(&a.dotenvPath, "env-file", ".env", "dotenv file with FRIENDNET_* overrides")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides config)")
	root.PersistentFlags().BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		newPathCmd(a),
		newSendCmd(a),
		newKeygenCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.LoadEnv(a.dotenvPath); err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(cmd.ErrOrStderr())
	if a.logJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	logrus.WithFields(logrus.Fields{
		"function": "setup",
		"config":   a.configPath,
		"people":   len(cfg.Network.People),
	}).Debug("Configuration loaded")

	a.cfg = cfg
	return nil
}

// network builds the configured network, falling back to the demo chain.
func (a *app) network(opts ...friend.Option) (*friend.Network, error) {
	if len(a.cfg.Network.People) == 0 {
		a.cfg.Network = config.DemoNetwork()
	}
	return a.cfg.BuildNetwork(opts...)
}
