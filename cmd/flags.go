package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/M4RKII11II/v10/cmd/util"
	"github.com/M4RKII11II/v10/pkg/config"
)

// addLogFlags defines the logging flags shared by every command.
func addLogFlags(flags *pflag.FlagSet) {
	defaultConfig := config.DefaultConfig()

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in (text or json)")
	flags.String("log-level", defaultConfig.Log.Level, "the log level to use (none, debug, info, warn or error)")
}

func addMedianFlags(flags *pflag.FlagSet) {
	defaultConfig := config.DefaultConfig()

	flags.Int("size", defaultConfig.Median.Size, "the number of generated values, excluding the pivot; must be even")
	flags.String("seed", defaultConfig.Median.Seed, "any text; the same seed reproduces the same run (random when empty)")
	flags.Int("workers", defaultConfig.Median.Workers, "the number of goroutines generating values (0 uses GOMAXPROCS)")
}

func addStatsFlags(flags *pflag.FlagSet) {
	defaultConfig := config.DefaultConfig()

	// kept as strings so that viper can decode them into the float slice of the config
	defaults := make([]string, 0, len(defaultConfig.Stats.Buckets))
	for _, b := range defaultConfig.Stats.Buckets {
		defaults = append(defaults, strconv.FormatFloat(b, 'g', -1, 64))
	}
	flags.StringSlice("buckets", defaults, "histogram bucket upper bounds, e.g. --buckets 0,10,100")
}

// bindLogFlags binds the logging flags to their viper keys and env vars.
func bindLogFlags(flags *pflag.FlagSet) {
	util.MustBindPFlag("log.format", flags.Lookup("log-format"))
	util.MustBindEnv("log.format", "V10_LOG_FORMAT")

	util.MustBindPFlag("log.level", flags.Lookup("log-level"))
	util.MustBindEnv("log.level", "V10_LOG_LEVEL")
}

// bindMedianFlagsFunc binds the median cmd flags to the equivalent config values managed
// by viper. Binding happens in PreRun so that only the command being executed owns the
// shared keys, whatever order the commands were constructed in.
func bindMedianFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		bindLogFlags(flags)

		util.MustBindPFlag("median.size", flags.Lookup("size"))
		util.MustBindEnv("median.size", "V10_MEDIAN_SIZE")

		util.MustBindPFlag("median.seed", flags.Lookup("seed"))
		util.MustBindEnv("median.seed", "V10_MEDIAN_SEED")

		util.MustBindPFlag("median.workers", flags.Lookup("workers"))
		util.MustBindEnv("median.workers", "V10_MEDIAN_WORKERS")
	}
}

// bindStatsFlagsFunc is the stats counterpart of bindMedianFlagsFunc.
func bindStatsFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		bindLogFlags(flags)

		util.MustBindPFlag("stats.buckets", flags.Lookup("buckets"))
		util.MustBindEnv("stats.buckets", "V10_STATS_BUCKETS")
	}
}
