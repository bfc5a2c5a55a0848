package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lazily/internal/logging"
)

const (
	configF   = "config"
	logLevelF = "log-level"
	outputF   = "output"
	limitF    = "limit"
	metricsF  = "metrics"

	defaultLogLevel = "warn"
	defaultOutput   = formatTable
	defaultLimit    = 0
	defaultMetrics  = false

	configUsage   = "The yaml configuration file."
	logLevelUsage = "Log level: trace, debug, info, warn or error."
	outputUsage   = "Output format: table, json or yaml."
	limitUsage    = "Stop after this many output rows; 0 means no limit."
	metricsUsage  = "Print traversal counters in Prometheus text format to stderr after the run."

	envPrefix = "LAZILY"
)

type config struct {
	LogLevel string `mapstructure:"log-level"`
	Output   string `mapstructure:"output"`
	Limit    int    `mapstructure:"limit"`
	Metrics  bool   `mapstructure:"metrics"`
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cfg := new(config)

	rootCmd := &cobra.Command{
		Use:   "lazily",
		Short: "Compose lists lazily: zip them together or tag them with positions.",
		Long: `lazily builds lazy sequence pipelines over the lists given on the command line.

A LIST is either a comma-separated literal such as "A,B,C", or @path to read
one element per line from a file.`,
		SilenceUsage: true,
	}

	// --log_level and --log-level are the same flag.
	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	rootCmd.PersistentFlags().StringVar(&cfgFile, configF, "", configUsage)
	rootCmd.PersistentFlags().String(logLevelF, defaultLogLevel, logLevelUsage)
	rootCmd.PersistentFlags().StringP(outputF, "o", defaultOutput, outputUsage)
	rootCmd.PersistentFlags().Int(limitF, defaultLimit, limitUsage)
	rootCmd.PersistentFlags().Bool(metricsF, defaultMetrics, metricsUsage)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrap(err, "reading config")
			}
		}
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if err := v.Unmarshal(cfg); err != nil {
			return errors.Wrap(err, "decoding config")
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return errors.Wrapf(err, "invalid --%s", logLevelF)
		}
		logging.SetGlobalLogger(zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(level).With().Timestamp().Logger())

		if _, err := newRenderer(cfg.Output, cmd.OutOrStdout()); err != nil {
			return err
		}
		logging.Debug().Str("output", cfg.Output).Int("limit", cfg.Limit).Msg("configured")
		return nil
	}

	rootCmd.AddCommand(newZipCmd(cfg), newEnumerateCmd(cfg))
	return rootCmd
}
