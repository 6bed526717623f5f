package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vitapredict/heart"
	"github.com/vitapredict/heart/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	session string
	logger  *slog.Logger
	closers []io.Closer
}

func newApp() *app {
	v := viper.New()
	config.SetDefaults(v)
	return &app{
		v:       v,
		session: uuid.NewString(),
		logger:  slog.New(slog.DiscardHandler),
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "heartfield",
		Short:         "Particle heart renderer and health risk scorer.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./heartfield.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")
	flags.Int("total", 0, "particle count")
	flags.Uint64("seed", 0, "random seed; 0 seeds from the clock")
	a.bind(root, map[string]string{
		"logger.level":  "log-level",
		"logger.format": "log-format",
		"field.total":   "total",
		"field.seed":    "seed",
	}, true)

	root.AddCommand(
		a.renderCommand(),
		a.windowCommand(),
		a.termCommand(),
		a.scoreCommand(),
		versionCommand(),
	)
	return root
}

// bind maps config keys to flags of cmd.
func (a *app) bind(cmd *cobra.Command, keys map[string]string, persistent bool) {
	fs := cmd.Flags()
	if persistent {
		fs = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := a.v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

// setup loads the configuration and installs the console logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.initializeConfig(); err != nil {
		return err
	}
	cfg, err := config.NewConfigFromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer, err := newLogger(cmd.ErrOrStderr(), cfg.Logger)
	if err != nil {
		return err
	}
	a.track(closer)
	a.useLogger(logger)
	a.logger.Debug("configuration loaded", "command", cmd.Name(), "config", a.v.ConfigFileUsed())
	return nil
}

// initializeConfig reads the config file and environment overrides.
func (a *app) initializeConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("heartfield")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// useLogger tags l with the session id and installs it for the library.
func (a *app) useLogger(l *slog.Logger) {
	a.logger = l.With("session", a.session)
	heart.SetLogger(a.logger)
}

func (a *app) track(c io.Closer) {
	if c != nil {
		a.closers = append(a.closers, c)
	}
}

// close releases log files opened during the run.
func (a *app) close() {
	heart.SetLogger(nil)
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// fieldOptions translates the field section into heart options.
func (a *app) fieldOptions() []heart.Option {
	opts := []heart.Option{heart.WithTotal(a.cfg.Field.Total)}
	if a.cfg.Field.Seed != 0 {
		opts = append(opts, heart.WithSeed(a.cfg.Field.Seed))
	}
	return opts
}
