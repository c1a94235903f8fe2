package main

import (
	"flag"
	"net"
	nethttp "net/http"

	"github.com/minwire/httpd/app/lib/config"
	"github.com/minwire/httpd/app/lib/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	directory := flag.String("directory", "", "path to the files directory")
	addr := flag.String("addr", "", "TCP listen address")
	metricsAddr := flag.String("metrics-addr", "", "prometheus listen address (disabled when empty)")
	logLevel := flag.String("log-level", "", "log level")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *directory != "" {
		cfg.Directory = *directory
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := log.With().Logger()

	l, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal().Err(err).Msgf("failed to bind %s", cfg.Addr)
	}

	logger.Info().Str("addr", cfg.Addr).Str("directory", cfg.Directory).Msg("listening")

	metrics := http.NewMetrics(prometheus.DefaultRegisterer)
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, logger)
	}

	pipeline := http.NewPipeline(cfg.Directory, logger, metrics)

	for {
		conn, err := l.Accept()
		if err != nil {
			logger.Error().Err(err).Msg("error accepting connection")
			continue
		}

		logger.Debug().Msg("accepted connection")
		metrics.ConnectionAccepted()

		go pipeline.Handle(conn)
	}
}

func serveMetrics(addr string, logger zerolog.Logger) {
	mux := nethttp.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info().Str("addr", addr).Msg("serving metrics")
	if err := nethttp.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("metrics listener stopped")
	}
}
