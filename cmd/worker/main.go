package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-copy-backend/internal/config"
	"github.com/unclebandit/campaign-copy-backend/internal/db"
	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/queue"
	"github.com/unclebandit/campaign-copy-backend/internal/repository"
	"github.com/unclebandit/campaign-copy-backend/internal/service"
)

// Drains generation events from RabbitMQ into Postgres.
func main() {
	logger.InitZap()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.LogI("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("invalid configuration: %v", err)
	}
	if !cfg.Database.Enabled() || !cfg.Broker.Enabled() {
		fatal("worker requires DATABASE_URL and AMQP_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg.Database.URL)
	if err != nil {
		fatal("%v", err)
	}
	defer conn.Close()

	mq, err := queue.DialAMQP(cfg.Broker.AMQPURL)
	if err != nil {
		fatal("%v", err)
	}
	defer mq.Close()

	worker := service.NewWorker(&repository.GenerationEventRepository{DB: conn})
	if err := worker.Start(mq, cfg.Broker.EventQueue); err != nil {
		fatal("failed to start worker: %v", err)
	}

	logger.LogIf("worker running, waiting for messages on %s", cfg.Broker.EventQueue)
	<-ctx.Done()
}

func fatal(format string, args ...interface{}) {
	logger.LogEf(format, args...)
	logger.Sync()
	os.Exit(1)
}
