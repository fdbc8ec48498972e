package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-goertzel/dsp/core"
	"github.com/spf13/viper"
)

// Config is the command line configuration after flags, environment and
// config file have been merged.
type Config struct {
	LogLevel   string  `mapstructure:"log_level"`
	Output     string  `mapstructure:"output"`
	Frequency  float64 `mapstructure:"frequency"`
	SampleRate float64 `mapstructure:"sample_rate"`
	Window     int     `mapstructure:"window"`
	Threshold  float64 `mapstructure:"threshold"`

	Gen GenConfig `mapstructure:"gen"`
}

// GenConfig holds test-tone generator settings.
type GenConfig struct {
	Samples   int     `mapstructure:"samples"`
	Amplitude float64 `mapstructure:"amplitude"`
	Level     float64 `mapstructure:"level"`
	Noise     float64 `mapstructure:"noise"`
	Seed      int64   `mapstructure:"seed"`
	On        int     `mapstructure:"on"`
	Off       int     `mapstructure:"off"`
	Bursts    int     `mapstructure:"bursts"`
}

const envPrefix = "GOERTZEL"

// setDefaults sets default configuration values for keys that are not bound
// to a flag default.
func setDefaults(v *viper.Viper) {
	def := core.DefaultProcessorConfig()

	if !v.IsSet("log_level") {
		v.SetDefault("log_level", "info")
	}
	if !v.IsSet("output") {
		v.SetDefault("output", formatTable)
	}
	if !v.IsSet("frequency") {
		v.SetDefault("frequency", def.TargetFrequency)
	}
	if !v.IsSet("sample_rate") {
		v.SetDefault("sample_rate", def.SampleRate)
	}
	if !v.IsSet("window") {
		v.SetDefault("window", def.WindowSize)
	}
	if !v.IsSet("threshold") {
		v.SetDefault("threshold", -30.0)
	}
}

// readConfig wires environment lookup and reads the config file. An explicit
// file must exist; the search path is optional.
func readConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
		return nil
	}

	v.SetConfigName("goertzel")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "goertzel"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// loadConfig decodes the merged settings.
func loadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Output {
	case formatTable, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", cfg.Output)
	}
	return nil
}
