package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cenkalti/backoff/v4"
	"github.com/joho/godotenv"
	"github.com/ykhalil/gulfboard/internal/board/config"
	"github.com/ykhalil/gulfboard/internal/board/controller"
	"github.com/ykhalil/gulfboard/internal/board/db"
	"github.com/ykhalil/gulfboard/internal/board/events"
	"github.com/ykhalil/gulfboard/internal/board/handlers"
	"github.com/ykhalil/gulfboard/internal/board/seed"
	"go.uber.org/zap"
)

func main() {
	// Missing .env is fine; config.yaml carries the defaults.
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			logger.Error("failed to sync logger", zap.Error(err))
		}
	}(logger)

	configPath := flag.String("config", filepath.Join("internal", "board", "config", "config.yaml"), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	repo, err := connectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	if cfg.Seed {
		if err := seed.Load(context.Background(), repo, logger); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	producer, consumer := initEvents(cfg, logger)
	defer producer.Close()
	if consumer != nil {
		defer consumer.Close()
	}

	boardSvc := controller.NewBoardService(repo, repo, producer, logger)
	authSvc := controller.NewAuthService(repo, repo, producer, cfg.JWTSecret, logger)

	handler := handlers.NewHandler(boardSvc, authSvc, logger)
	server := handlers.NewServer(cfg.HTTPPort, cfg.AllowOrigins, cfg.JWTSecret, handler, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	waitForShutdown(server, logger)
}

// connectDatabase retries the initial connection, covering the window
// where Postgres is still coming up next to the service.
func connectDatabase(cfg *config.Config, logger *zap.Logger) (*db.Repository, error) {
	dbConf := &db.Config{
		Driver:   cfg.Database.Driver,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
		Path:     cfg.Database.Path,
	}

	var repo *db.Repository
	operation := func() error {
		var err error
		repo, err = db.NewRepository(dbConf)
		if err != nil {
			logger.Warn("database not ready, retrying", zap.Error(err))
		}
		return err
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return repo, nil
}

// eventProducer is what main needs from a producer: the service-facing
// Produce plus Close for shutdown. Both *events.Producer and
// events.Discard satisfy it.
type eventProducer interface {
	controller.EventProducer
	Close()
}

// initEvents wires the Kafka producer, or a no-op one when no brokers are
// configured (demo mode). With brokers present it also starts a consumer
// that logs board events as an audit trail.
func initEvents(cfg *config.Config, logger *zap.Logger) (eventProducer, *events.Consumer) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no Kafka brokers configured, events disabled")
		return events.Discard{}, nil
	}

	producer, err := events.NewProducer(cfg.Kafka.Brokers, logger, cfg.Kafka.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}

	consumer := events.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
	consumer.RegisterHandler(func(_ context.Context, event events.Event) error {
		logger.Info("board event",
			zap.String("type", string(event.Type)),
			zap.Any("ref", event.Ref),
			zap.Time("at", event.At))
		return nil
	})
	consumer.Start(context.Background())
	return producer, consumer
}

// waitForShutdown blocks until an interrupt or SIGTERM is received, then
// shuts down the server.
func waitForShutdown(server *handlers.Server, logger *zap.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	server.Stop()
	logger.Info("Server stopped properly")
}
