// Package main provides the rangebench CLI, which measures how much an LRU
// range cache speeds up a skewed stream of range-sum queries and updates.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rangecache"
	"github.com/dmitrymomot/rangecache/pkg/bench"
	"github.com/dmitrymomot/rangecache/pkg/config"
	"github.com/dmitrymomot/rangecache/pkg/logger"
	"github.com/dmitrymomot/rangecache/pkg/metrics"
)

const envPrefix = "RANGEBENCH_"

// Version as provided by the build.
var Version = "unknown (built from source)"

// settings is everything the command reads from the environment.
type settings struct {
	Bench       bench.Config
	Format      string `env:"FORMAT" envDefault:"text"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"`
	Env         string `env:"ENV" envDefault:"development"`
	MetricsFile string `env:"METRICS_FILE"`
}

type flags struct {
	envFile string
	s       settings
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	defaults := bench.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "rangebench",
		Short: "Compare range-sum queries with and without an LRU range cache",
		Long: "rangebench generates a reproducible workload of range-sum queries and element updates,\n" +
			"replays it once without a cache and once through an LRU range cache, checks that both\n" +
			"runs agree on every answer and reports the timings.\n\n" +
			"Every flag can also be set through a " + envPrefix + "* environment variable or a .env file.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.envFile, "env-file", "", "load variables from this .env file (default .env if present)")
	fl.IntVarP(&f.s.Bench.Size, "size", "n", defaults.Size, "number of elements")
	fl.IntVarP(&f.s.Bench.Queries, "queries", "q", defaults.Queries, "number of operations")
	fl.IntVarP(&f.s.Bench.Capacity, "capacity", "c", defaults.Capacity, "cache capacity in ranges")
	fl.IntVar(&f.s.Bench.HotPool, "hot-pool", defaults.HotPool, "number of hot ranges")
	fl.Float64Var(&f.s.Bench.PHot, "p-hot", defaults.PHot, "probability that a query hits the hot pool")
	fl.Float64Var(&f.s.Bench.PUpdate, "p-update", defaults.PUpdate, "probability that an operation is an update")
	fl.Int64Var(&f.s.Bench.MaxValue, "max-value", defaults.MaxValue, "largest element value")
	fl.Uint64Var(&f.s.Bench.Seed, "seed", defaults.Seed, "workload seed")
	fl.StringVarP(&f.s.Format, "format", "o", string(bench.FormatText), "report format: text, json or yaml")
	fl.StringVar(&f.s.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fl.StringVar(&f.s.LogFormat, "log-format", "", "log format: text or json (default depends on --env)")
	fl.StringVar(&f.s.Env, "env", "development", "environment name used for logging defaults")
	fl.StringVar(&f.s.MetricsFile, "metrics-file", "", "write Prometheus metrics of the cached run to this file")

	return cmd
}

// resolveSettings loads the environment and lets explicitly set flags win.
func resolveSettings(cmd *cobra.Command, f *flags) (settings, error) {
	opts := []config.Option{config.WithPrefix(envPrefix)}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFiles(f.envFile))
	}

	var s settings
	if err := config.Load(&s, opts...); err != nil {
		return settings{}, err
	}

	changed := cmd.Flags().Changed
	override := func(name string, apply func()) {
		if changed(name) {
			apply()
		}
	}
	override("size", func() { s.Bench.Size = f.s.Bench.Size })
	override("queries", func() { s.Bench.Queries = f.s.Bench.Queries })
	override("capacity", func() { s.Bench.Capacity = f.s.Bench.Capacity })
	override("hot-pool", func() { s.Bench.HotPool = f.s.Bench.HotPool })
	override("p-hot", func() { s.Bench.PHot = f.s.Bench.PHot })
	override("p-update", func() { s.Bench.PUpdate = f.s.Bench.PUpdate })
	override("max-value", func() { s.Bench.MaxValue = f.s.Bench.MaxValue })
	override("seed", func() { s.Bench.Seed = f.s.Bench.Seed })
	override("format", func() { s.Format = f.s.Format })
	override("log-level", func() { s.LogLevel = f.s.LogLevel })
	override("log-format", func() { s.LogFormat = f.s.LogFormat })
	override("env", func() { s.Env = f.s.Env })
	override("metrics-file", func() { s.MetricsFile = f.s.MetricsFile })

	return s, nil
}

func run(cmd *cobra.Command, f *flags) error {
	s, err := resolveSettings(cmd, f)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	logOpts := []logger.Option{
		logger.WithEnvironment(s.Env, "rangebench"),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if s.LogFormat != "" {
		switch logger.Format(s.LogFormat) {
		case logger.FormatJSON, logger.FormatText:
			logOpts = append(logOpts, logger.WithFormat(logger.Format(s.LogFormat)))
		default:
			return fmt.Errorf("invalid log format %q", s.LogFormat)
		}
	}
	log := logger.New(logOpts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		cacheOpts []rangecache.Option
		reg       *prometheus.Registry
	)
	if s.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		cacheOpts = append(cacheOpts, rangecache.WithObserver(metrics.NewObserver(reg, "rangecache")))
	}

	report, err := bench.Compare(ctx, s.Bench, log, cacheOpts...)
	if err != nil {
		log.ErrorContext(ctx, "benchmark failed", logger.Error(err))
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), bench.Format(s.Format)); err != nil {
		return err
	}

	if reg != nil {
		if err := writeMetrics(s.MetricsFile, reg); err != nil {
			return err
		}
		log.DebugContext(ctx, "metrics written", slog.String("path", s.MetricsFile))
	}
	return nil
}

func writeMetrics(path string, reg *prometheus.Registry) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return metrics.WriteText(file, reg)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
