package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstgen/internal/config"
	"github.com/katalvlaran/mstgen/internal/logger"
	"github.com/katalvlaran/mstgen/internal/metrics"
	"github.com/katalvlaran/mstgen/session"
)

func main() {
	var (
		inputFile   = flag.String("input", "", "File of \"x y\" lines to read instead of stdin")
		format      = flag.String("format", config.FORMAT_TEXT, "Output format: text or json")
		method      = flag.String("method", "prim", "MST algorithm: prim or kruskal")
		logLevel    = flag.String("log-level", "info", "Log level")
		validate    = flag.Bool("validate", false, "Check every rebuilt tree is spanning")
		strict      = flag.Bool("strict", false, "Exit on the first malformed input line")
		metricsAddr = flag.String("metrics-addr", "", "Hostname:port serving /metrics (disabled when empty)")
	)
	flag.Parse()

	cfg := config.Load(flagOverrides(map[string]interface{}{
		"input":        *inputFile,
		"format":       *format,
		"method":       *method,
		"log-level":    *logLevel,
		"validate":     *validate,
		"strict":       *strict,
		"metrics-addr": *metricsAddr,
	}))

	log := logrus.NewEntry(logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr))
	log.Debugf("configuration:\n%s", cfg)

	if err := process(cfg, log); err != nil {
		log.WithFields(logrus.Fields{"error": err}).Error("Stopped reading points")
		os.Exit(1)
	}
}

// process wires the session, optional metrics endpoint and input stream, then
// feeds every point through the session until the input ends.
func process(cfg *config.Config, log *logrus.Entry) error {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	if cfg.MetricsAddr != "" {
		srv := startMetricsServer(cfg.MetricsAddr, reg, log)
		defer shutdownMetricsServer(srv, log)
	}

	sess, err := session.New(
		session.WithLogger(log),
		session.WithMetrics(m),
		session.WithMethod(cfg.MstMethod),
		session.WithValidation(cfg.ValidateTree),
	)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if cfg.InputFile != "" {
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	r := &runner{
		session: sess,
		out:     os.Stdout,
		format:  cfg.OutputFormat,
		strict:  cfg.StrictInput,
		log:     log,
		metrics: m,
	}

	return r.run(in)
}

// flagOverrides maps flags explicitly set on the command line onto config keys.
// Flags left at their defaults do not shadow MSTGEN_* environment variables.
func flagOverrides(values map[string]interface{}) map[string]interface{} {
	keys := map[string]string{
		"input":        config.INPUT_FILE,
		"format":       config.OUTPUT_FORMAT,
		"method":       config.MST_METHOD,
		"log-level":    config.LOG_LEVEL,
		"validate":     config.VALIDATE_TREE,
		"strict":       config.STRICT_INPUT,
		"metrics-addr": config.METRICS_ADDR,
	}

	overrides := make(map[string]interface{})
	flag.Visit(func(f *flag.Flag) {
		if key, ok := keys[f.Name]; ok {
			overrides[key] = values[f.Name]
		}
	})

	return overrides
}

func startMetricsServer(addr string, reg *prometheus.Registry, log *logrus.Entry) *http.Server {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("Starting metrics server: %s", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.WithFields(logrus.Fields{"error": err}).Error("metrics server error")
		}
	}()

	return srv
}

func shutdownMetricsServer(srv *http.Server, log *logrus.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down metrics server")
	if err := srv.Shutdown(ctx); err != nil {
		log.WithFields(logrus.Fields{"error": err}).Warn("Error shutting down metrics server")
	}
}
