// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-copy-backend/internal/config"
	"github.com/unclebandit/campaign-copy-backend/internal/controller"
	"github.com/unclebandit/campaign-copy-backend/internal/db"
	"github.com/unclebandit/campaign-copy-backend/internal/handler"
	"github.com/unclebandit/campaign-copy-backend/internal/logger"
	"github.com/unclebandit/campaign-copy-backend/internal/provider"
	"github.com/unclebandit/campaign-copy-backend/internal/queue"
	"github.com/unclebandit/campaign-copy-backend/internal/repository"
	"github.com/unclebandit/campaign-copy-backend/internal/service"
)

func main() {
	logger.InitZap()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.LogI("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.LogEf("invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var contentProvider provider.ContentProvider
	if cfg.Provider.IsConfigured() {
		gemini, err := provider.NewGeminiProvider(ctx, cfg.Provider)
		if err != nil {
			logger.LogWf("gemini unavailable, running in fallback-only mode: %v", err)
		} else {
			defer gemini.Close()
			contentProvider = gemini
		}
	} else {
		logger.LogI("no provider credential configured, running in fallback-only mode")
	}

	recorders := service.MultiRecorder{service.LogRecorder{}}

	var eventRepo *repository.GenerationEventRepository
	if cfg.Database.Enabled() {
		conn, err := db.Open(ctx, cfg.Database.URL)
		if err != nil {
			logger.LogEf("database unavailable, generation events will only be logged: %v", err)
		} else {
			defer conn.Close()
			eventRepo = &repository.GenerationEventRepository{DB: conn}
		}
	}

	if q, topic := eventQueue(cfg, eventRepo); q != nil {
		recorders = append(recorders, &service.QueueRecorder{Queue: q, Topic: topic})
	}

	generator := service.NewContentGenerator(cfg.Provider, cfg.Generator, contentProvider, recorders)
	contentController := &controller.ContentController{Generator: generator}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/campaign-content", contentController.GenerateContent)
	r.Get("/themes", contentController.Themes)

	if eventRepo != nil {
		eventHandler := handler.NewGenerationEventHandler(eventRepo)
		r.Get("/generation-events", eventHandler.ListEvents)
		r.Get("/generation-events/stats", eventHandler.GetStats)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.LogIf("server running on %s", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.LogEf("server stopped: %v", err)
		os.Exit(1)
	}
}

// eventQueue picks where generation events go: RabbitMQ when configured
// (drained by cmd/worker), otherwise an in-process queue feeding the
// repository directly. Returns nil when events can only be logged.
func eventQueue(cfg *config.Config, repo *repository.GenerationEventRepository) (queue.Queue, string) {
	if cfg.Broker.Enabled() {
		q, err := queue.DialAMQP(cfg.Broker.AMQPURL)
		if err == nil {
			return q, cfg.Broker.EventQueue
		}
		logger.LogWf("rabbitmq unavailable, falling back to in-process queue: %v", err)
	}

	if repo == nil {
		return nil, ""
	}
	q := queue.NewInMemoryQueue()
	if err := service.NewWorker(repo).Start(q, queue.TopicGenerationEvents); err != nil {
		logger.LogWf("failed to start generation event subscriber: %v", err)
		return nil, ""
	}
	return q, queue.TopicGenerationEvents
}

