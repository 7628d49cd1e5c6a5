package main

import (
	"github.com/Pure-Company/blockfunc/internal/log"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Version string

const (
	configF     = "config"
	verbosityF  = "verbosity"
	shapesFileF = "shapes-file"
	tableF      = "table"

	defaultConfig     = ""
	defaultVerbosity  = log.INFO
	defaultShapesFile = ""
	defaultTable      = false

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	shapesFileUsage    = "YAML file listing the shapes to print. " +
		"If unset a 4x1 rectangle and a circle of radius 3 are used."
	tableUsage = "Print shapes as a table instead of one line each."
)

// Config holds the settings shared by every subcommand. Values come from
// flags, then the config file, then the defaults above.
type Config struct {
	Verbosity  log.LogLevel `mapstructure:"verbosity" yaml:"verbosity"`
	ShapesFile string       `mapstructure:"shapes-file" yaml:"shapes-file"`
	Table      bool         `mapstructure:"table" yaml:"table"`
}

// NewLoggerFn builds the logger once the verbosity is known.
type NewLoggerFn func(level log.LogLevel) (*zap.SugaredLogger, error)

// app is what subcommands see once the root command has loaded the config.
type app struct {
	cfg    *Config
	logger *zap.SugaredLogger
}

func NewCmd(newLoggerFn NewLoggerFn) *cobra.Command {
	a := &app{cfg: new(Config), logger: log.NewNopLogger()}
	var cfgFile string
	verbosity := defaultVerbosity

	rootCmd := &cobra.Command{
		Use:           "blockfunc",
		Short:         "Block-style iteration demos.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	rootCmd.PersistentFlags().Var(&verbosity, verbosityF, verbosityFlagUsage)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		v.SetDefault(shapesFileF, defaultShapesFile)
		v.SetDefault(tableF, defaultTable)
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrap(err, "read config")
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
		))
		if err := v.Unmarshal(a.cfg, decodeHook); err != nil {
			return errors.Wrap(err, "decode config")
		}

		logger, err := newLoggerFn(a.cfg.Verbosity)
		if err != nil {
			return errors.Wrap(err, "create logger")
		}
		a.logger = logger
		a.logger.Debugw("Config loaded", "command", cmd.Name(), "config", a.cfg)
		return nil
	}

	rootCmd.AddCommand(
		a.yieldCmd(),
		a.fibCmd(),
		a.timesCmd(),
		a.digitsCmd(),
		a.lettersCmd(),
		a.isPrimeCmd(),
		a.primesCmd(),
		a.compositesCmd(),
		a.eachCmd(),
		a.bitsCmd(),
		a.measureCmd(),
		a.shapesCmd(),
		a.configCmd(),
	)
	return rootCmd
}
