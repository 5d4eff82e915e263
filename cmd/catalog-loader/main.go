// Command catalog-loader bulk-loads flat-file catalog dumps into the store.
// Each input file carries one record per line; ingestion is sequential and
// halts on the first malformed or unstorable record.
//
// Usage:
//
//	catalog-loader -api-file apis.txt -mashup-file mashups.txt
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/apicatalog/catalogd/internal/config"
	dbRedis "github.com/apicatalog/catalogd/internal/db/redis"
	"github.com/apicatalog/catalogd/internal/ingest"
	logpkg "github.com/apicatalog/catalogd/internal/logger"
	apirepo "github.com/apicatalog/catalogd/internal/repository/api"
	mashuprepo "github.com/apicatalog/catalogd/internal/repository/mashup"
	apiuc "github.com/apicatalog/catalogd/internal/usecase/api"
	mashupuc "github.com/apicatalog/catalogd/internal/usecase/mashup"
	"github.com/apicatalog/catalogd/internal/version"
)

type flags struct {
	apiFile     string
	mashupFile  string
	metricsPort string
	timeout     time.Duration
}

func parseFlags() flags {
	f := flags{}
	flag.StringVar(&f.apiFile, "api-file", "", "API dump file (one record per line)")
	flag.StringVar(&f.mashupFile, "mashup-file", "", "Mashup dump file (one record per line)")
	flag.StringVar(&f.metricsPort, "metrics-port", "", "Prometheus metrics port (empty: disabled)")
	flag.DurationVar(&f.timeout, "timeout", 0, "Overall ingestion deadline (0: none)")
	flag.Parse()
	return f
}

func main() {
	_ = godotenv.Load()

	f := parseFlags()
	if f.apiFile == "" && f.mashupFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting catalog loader",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.String("api_file", f.apiFile),
		zap.String("mashup_file", f.mashupFile),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if f.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	apiSvc := apiuc.New(apirepo.New(store))
	mashupSvc := mashupuc.New(mashuprepo.New(store))

	driver := ingest.New(apiSvc, mashupSvc, logger)

	var metricsSrv *http.Server
	if f.metricsPort != "" {
		reg := prometheus.NewRegistry()
		driver = driver.WithMetrics(ingest.NewMetrics(reg))
		metricsSrv = serveMetrics(f.metricsPort, reg, logger)
	}

	apiCount, mashupCount := 0, 0
	failed := false

	if f.apiFile != "" {
		apiCount, err = driver.IngestAPIFile(ctx, f.apiFile)
		if err != nil {
			logger.Error("API ingestion failed", zap.Error(err))
			failed = true
		}
	}
	if !failed && f.mashupFile != "" {
		mashupCount, err = driver.IngestMashupFile(ctx, f.mashupFile)
		if err != nil {
			logger.Error("Mashup ingestion failed", zap.Error(err))
			failed = true
		}
	}

	logger.Info("Loader finished",
		zap.Int("apis_loaded", apiCount),
		zap.Int("mashups_loaded", mashupCount),
		zap.Bool("failed", failed),
	)

	if metricsSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}

	if failed {
		os.Exit(1)
	}
}

// serveMetrics starts the HTTP server for Prometheus scrapes.
func serveMetrics(port string, reg *prometheus.Registry, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	return srv
}
