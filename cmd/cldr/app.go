package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"lingo-hq/cldr/pkg/cli"
	"lingo-hq/cldr/pkg/config"
	"lingo-hq/cldr/pkg/locale"
	"lingo-hq/cldr/pkg/resources"
	"lingo-hq/cldr/pkg/telemetry/logging"
	"lingo-hq/cldr/pkg/telemetry/metrics"
	"lingo-hq/cldr/pkg/telemetry/tracing"
)

// shutdownTimeout bounds span flushing on exit.
const shutdownTimeout = 5 * time.Second

// app holds everything a command needs: the resolved configuration, the
// telemetry stack and a Loader wired to both.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	metrics    *metrics.Collector
	tracer     *tracing.Tracer
	normalizer locale.Normalizer
	loader     *resources.Loader
}

// globalFlags mirrors the persistent flags so app construction does not
// read package state directly.
type globalFlags struct {
	configFile  string
	root        string
	customRoot  string
	verbose     bool
	metricsFile string
}

func currentFlags() globalFlags {
	return globalFlags{
		configFile:  cfgFile,
		root:        rootDir,
		customRoot:  customRoot,
		verbose:     verbose,
		metricsFile: metricsFile,
	}
}

// loadConfig reads the configuration file, then applies environment and
// flag overrides.
func loadConfig(flags globalFlags) (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(flags.configFile)
	if err != nil {
		return nil, err
	}

	if flags.root != "" {
		derived := cfg.Resources.CustomRoot == filepath.Join(cfg.Resources.Root, config.DefaultCustomSubdir)
		cfg.Resources.Root = flags.root
		if derived {
			cfg.Resources.CustomRoot = filepath.Join(flags.root, config.DefaultCustomSubdir)
		}
	}
	if flags.customRoot != "" {
		cfg.Resources.CustomRoot = flags.customRoot
		cfg.Resources.CustomEnabled = true
	}
	if flags.verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	if flags.metricsFile != "" {
		cfg.Telemetry.Metrics.Textfile = flags.metricsFile
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after flag overrides: %w", err)
	}
	return cfg, nil
}

// newApp builds the telemetry stack and the Loader from the configuration.
// Logs go to logOut.
func newApp(flags globalFlags, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.FromConfig(cfg.Telemetry.Logging, logOut))
	if err != nil {
		return nil, cli.NewConfigError("telemetry.logging", err.Error())
	}

	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	a := &app{
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics.NewCollector(&cfg.Telemetry.Metrics, nil),
		tracer:     tracer,
		normalizer: locale.NewCLDRNormalizer(cfg.Locales.Aliases),
	}
	a.loader = a.newLoader(cfg.Resources.Root, a.customRootOption())

	logger.Debug("loader initialized",
		"root", cfg.Resources.Root,
		"custom_root", a.loader.CustomRoot(),
		"tracing", tracer.Enabled(),
		"metrics", cfg.Telemetry.Metrics.Enabled,
	)
	return a, nil
}

func (a *app) customRootOption() string {
	if !a.cfg.Resources.CustomEnabled {
		return ""
	}
	return a.cfg.Resources.CustomRoot
}

// newLoader returns a fresh Loader sharing the app's telemetry. Each Loader
// owns its cache, so lint runs never see stale entries.
func (a *app) newLoader(root, custom string) *resources.Loader {
	return resources.New(root,
		resources.WithCustomRoot(custom),
		resources.WithLocaleNormalizer(a.normalizer),
		resources.WithLogger(a.logger),
		resources.WithMetrics(a.metrics),
		resources.WithTracer(a.tracer.Tracer()),
	)
}

// Close flushes spans and writes the metrics textfile when configured.
func (a *app) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var firstErr error
	if err := a.tracer.Shutdown(ctx); err != nil {
		a.logger.Warn("failed to shut down tracer", "error", err)
		firstErr = err
	}

	if path := a.cfg.Telemetry.Metrics.Textfile; path != "" {
		if err := a.metrics.WriteTextfile(path); err != nil {
			a.logger.Warn("failed to write metrics textfile", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
