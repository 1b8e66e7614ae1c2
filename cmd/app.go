package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"watchlog/internal/config"
	"watchlog/internal/database"
	"watchlog/internal/models"
	"watchlog/internal/omdb"
	"watchlog/internal/repository"
	"watchlog/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// application holds the wired dependencies shared by the server and the CLI commands.
type application struct {
	cfg *config.Config
	log *logrus.Logger
	db  *database.Database

	mediaRepo    repository.MediaRepository
	backfillRepo repository.BackfillRepository

	media     services.MediaService
	backfill  services.BackfillService
	snapshots services.SnapshotService
}

func newApp(logOutput io.Writer) (*application, error) {
	cfg := config.Load()
	log := setupLogger(logOutput)

	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &application{
		cfg:          cfg,
		log:          log,
		db:           db,
		mediaRepo:    repository.NewMediaRepository(db),
		backfillRepo: repository.NewBackfillRepository(db),
	}

	// Without a key every enriching write fails with a 502 and PATCH still works.
	var lookup omdb.Lookuper
	if cfg.OMDb.APIKey != "" {
		client, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, omdb.WithTimeout(cfg.OMDb.HTTPTimeout))
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create OMDb client: %w", err)
		}
		lookup = client
	}

	var store services.ObjectStore
	if cfg.MinIO.Enabled() {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize MinIO service: %w", err)
		}
		store = minioService
	} else {
		log.Info("Object storage not configured, snapshots are disabled")
	}

	a.media = services.NewMediaService(a.mediaRepo, lookup, log)
	a.backfill = services.NewBackfillService(a.mediaRepo, a.backfillRepo, lookup, cfg.Backfill.DefaultNum, log)
	a.snapshots = services.NewSnapshotService(a.mediaRepo, store, log)

	return a, nil
}

func (a *application) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Errorf("Error closing database connection: %v", err)
	}
}

func kindArg(name string) (models.MediaKind, error) {
	kind, ok := models.LookupMediaKind(name)
	if !ok {
		return models.MediaKind{}, fmt.Errorf("unknown media type %q (want movie or show)", name)
	}
	return kind, nil
}

func setupLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(out)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stderr)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Debugf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Debugf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
