// Package cli implements the goertzel command line tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *Config
	log        *zap.Logger
}

// NewRootCommand builds the goertzel command tree with its own isolated
// configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	def := core.DefaultProcessorConfig()

	root := &cobra.Command{
		Use:   "goertzel",
		Short: "Measure the level of a single tone with the Goertzel filter",
		Long: `goertzel measures how strongly one target frequency is present in a
stream of real samples, in dBm referenced to 600 ohms.

Samples are read as text: numbers separated by whitespace or commas,
with '#' starting a comment. Settings come from flags, GOERTZEL_*
environment variables and an optional goertzel.yaml, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "",
		"config file (default is ./goertzel.yaml or $HOME/.config/goertzel/goertzel.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", formatTable, "output format (table, json, yaml)")
	pf.Float64P("frequency", "f", def.TargetFrequency, "target frequency in Hz")
	pf.Float64P("sample-rate", "r", def.SampleRate, "sampling frequency in Hz")
	pf.IntP("window", "n", def.WindowSize, "samples per streamed level")
	pf.Float64("threshold", -30, "level in dBm at or above which the tone counts as present")

	root.AddCommand(
		a.newProcessCommand(),
		a.newStreamCommand(),
		a.newGenCommand(),
		a.newDemoCommand(),
	)

	return root
}

// initialize binds flags, reads configuration and sets up logging before a
// subcommand runs.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := bindFlags(a.v, cmd.Root().PersistentFlags(), ""); err != nil {
		return err
	}
	if err := bindFlags(a.v, cmd.LocalNonPersistentFlags(), cmd.Name()+"."); err != nil {
		return err
	}

	if err := readConfig(a.v, a.configFile); err != nil {
		return err
	}

	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("command", cmd.Name()))

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", zap.String("path", used))
	}
	return nil
}

// bindFlags binds each flag to the viper key prefix+name, with dashes
// turned into underscores.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, prefix string) error {
	var lastErr error

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		key := prefix + strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})

	return lastErr
}
