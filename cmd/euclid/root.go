package main

import (
	"strings"
	"time"

	"github.com/chazu/euclid/pkg/engine"
	"github.com/chazu/euclid/pkg/tolerance"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// envPrefix namespaces environment overrides, e.g. EUCLID_EPSILON.
const envPrefix = "EUCLID"

// app carries the settings resolved from flags, environment and the config
// file, in that order of precedence.
type app struct {
	conf    *viper.Viper
	log     *zap.Logger
	ownLog  bool
	tol     tolerance.Tolerance
	timeout time.Duration
}

// newRootCmd builds the command tree. A nil logger means one is built from
// the --verbose flag once flags are parsed.
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{conf: viper.New(), log: log}

	root := &cobra.Command{
		Use:   "euclid",
		Short: "Tolerance-aware line and plane intersection",
		Long: `
euclid evaluates geometry scripts and answers intersection queries between
lines and planes in 2D and 3D. All comparisons use a single epsilon, set
with --epsilon, EUCLID_EPSILON or the epsilon key of the config file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownLog {
				// Syncing a console logger can fail on some terminals.
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	flags.Float64("epsilon", tolerance.DefaultEpsilon,
		"Absolute tolerance used by every comparison.")
	flags.Duration("timeout", engine.DefaultTimeout,
		"Maximum wall time for a script evaluation.")
	flags.BoolP("verbose", "v", false, "Log at debug level to stderr.")
	bindFlags(a.conf, flags)

	root.AddCommand(newEvalCmd(a), newLineLineCmd(a), newVersionCmd())
	return root
}

func bindFlags(conf *viper.Viper, flags *flag.FlagSet) {
	// BindPFlags only fails on a nil flag set.
	_ = conf.BindPFlags(flags)
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()
}

// setup reads the config file and resolves the shared settings before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cfg := a.conf.GetString("config"); cfg != "" {
		a.conf.SetConfigFile(cfg)
		if err := a.conf.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfg)
		}
	}

	eps := a.conf.GetFloat64("epsilon")
	tol, err := tolerance.New(eps)
	if err != nil {
		return err
	}
	// Constructors that validate their input read the process-wide value.
	if err := tolerance.SetEpsilon(eps); err != nil {
		return err
	}
	a.tol = tol

	a.timeout = a.conf.GetDuration("timeout")
	if a.timeout <= 0 {
		return errors.Errorf("timeout must be positive, got %s", a.timeout)
	}

	if a.log == nil {
		build := zap.NewProduction
		if a.conf.GetBool("verbose") {
			build = zap.NewDevelopment
		}
		if a.log, err = build(); err != nil {
			return errors.Wrap(err, "building logger")
		}
		a.ownLog = true
	}
	a.log.Debug("settings resolved",
		zap.Float64("epsilon", eps),
		zap.Duration("timeout", a.timeout),
		zap.String("config", a.conf.ConfigFileUsed()))
	return nil
}
