package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/RomanoLab/ista/config"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/vocabulary"
)

// rootState carries what persistent flags resolve to: the effective
// configuration, the process logger, and the metrics registry.
type rootState struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metric.MetricsRegistry

	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	state := &rootState{}

	cmd := &cobra.Command{
		Use:     appName,
		Short:   "Inspect, convert, filter, store, and export OWL2 ontologies",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.initialize()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&state.configPath, "config", "", "path to YAML configuration file")
	flags.StringVar(&state.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&state.logFormat, "log-format", "", "log format: text, json")
	flags.StringVar(&state.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	cmd.AddCommand(
		newStatsCmd(state),
		newConvertCmd(state),
		newFilterCmd(state),
		newSaveCmd(state),
		newLoadCmd(state),
		newListCmd(state),
		newDeleteCmd(state),
		newExportCmd(state),
	)
	return cmd
}

// initialize loads the configuration, applies flag overrides, registers
// configured prefixes, and installs the process logger.
func (s *rootState) initialize() error {
	if s.configPath != "" {
		cfg, err := config.Load(s.configPath)
		if err != nil {
			return err
		}
		s.cfg = cfg
	} else {
		s.cfg = config.Default()
	}

	if s.logLevel != "" {
		s.cfg.Logging.Level = s.logLevel
	}
	if s.logFormat != "" {
		s.cfg.Logging.Format = s.logFormat
	}

	for prefix, namespace := range s.cfg.Prefixes {
		vocabulary.RegisterPrefix(prefix, namespace)
	}

	s.logger = setupLogger(s.cfg.Logging.Level, s.cfg.Logging.Format)
	slog.SetDefault(s.logger)

	s.metrics = metric.NewMetricsRegistry()
	if s.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.metrics.Handler())
		go func() {
			if err := http.ListenAndServe(s.metricsAddr, mux); err != nil {
				s.logger.Error("metrics endpoint stopped", "addr", s.metricsAddr, "error", err)
			}
		}()
		s.logger.Info("serving metrics", "addr", s.metricsAddr)
	}
	return nil
}

// coreMetrics returns the shared core metrics for wiring into ontologies,
// filters, and serializers.
func (s *rootState) coreMetrics() *metric.Metrics {
	return s.metrics.CoreMetrics()
}
