package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/veiligonline/scamcheck/internal/application"
	appchecks "github.com/veiligonline/scamcheck/internal/application/checks"
	apphistory "github.com/veiligonline/scamcheck/internal/application/history"
	appreports "github.com/veiligonline/scamcheck/internal/application/reports"
	"github.com/veiligonline/scamcheck/internal/config"
	"github.com/veiligonline/scamcheck/internal/domain/analysis"
	domainhistory "github.com/veiligonline/scamcheck/internal/domain/history"
	geminicli "github.com/veiligonline/scamcheck/internal/infra/ai/gemini"
	openaicli "github.com/veiligonline/scamcheck/internal/infra/ai/openai"
	mysqlp "github.com/veiligonline/scamcheck/internal/infra/db/mysql"
	postgresp "github.com/veiligonline/scamcheck/internal/infra/db/postgres"
	"github.com/veiligonline/scamcheck/internal/infra/httpserver"
	"github.com/veiligonline/scamcheck/internal/infra/reportintake"
	"github.com/veiligonline/scamcheck/internal/infra/storage"
	"github.com/veiligonline/scamcheck/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	clock := application.SystemClock{}

	// history slot store per configured driver
	var slotStore domainhistory.SlotStore
	healthChecks := map[string]middleware.HealthChecker{}
	switch cfg.History.Driver {
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			logger.Fatal("mysql connect error", zap.Error(err))
		}
		defer db.Close()
		repo := mysqlp.NewSlotRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal("mysql schema error", zap.Error(err))
		}
		slotStore = repo
		healthChecks["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			logger.Fatal("postgres connect error", zap.Error(err))
		}
		defer db.Close()
		repo := postgresp.NewSlotRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal("postgres schema error", zap.Error(err))
		}
		slotStore = repo
		healthChecks["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		fs, err := storage.NewFileSlotStore(cfg.History.DataDir)
		if err != nil {
			logger.Fatal("file store init error", zap.Error(err))
		}
		slotStore = fs
	}

	// classifier per configured provider; a missing key fails here,
	// before any check can attempt network I/O
	var classifier analysis.Classifier
	switch cfg.AI.Provider {
	case "openai":
		classifier, err = openaicli.NewClient(cfg.APIKey(), cfg.AI.Model)
	default:
		classifier, err = geminicli.NewClient(ctx, cfg.APIKey(), cfg.AI.Model)
	}
	if err != nil {
		logger.Fatal("classifier init error", zap.Error(err))
	}

	// optional raw response archive
	var archive appchecks.Archive
	if cfg.Archive.Enabled {
		store, err := storage.NewArchive(ctx,
			cfg.Archive.Endpoint,
			cfg.Archive.Region,
			cfg.Archive.BucketName,
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			cfg.Archive.UseSSL,
		)
		if err != nil {
			logger.Fatal("archive init error", zap.Error(err))
		}
		archive = store
	}

	historySvc := apphistory.NewService(slotStore, clock, logger)
	checksSvc := &appchecks.Service{
		Classifier: classifier,
		History:    historySvc,
		Archive:    archive,
		Log:        logger,
	}
	reportsSvc := appreports.NewService(reportintake.NewStub(clock), clock)

	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(checksSvc, historySvc, reportsSvc, healthChecks, cfg.CORS.AllowedOrigins, logger))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // classification calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr), zap.String("provider", cfg.AI.Provider))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
