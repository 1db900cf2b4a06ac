package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/matheuslc/prospectly/internal/config"
	"github.com/matheuslc/prospectly/internal/infra/database"
	"github.com/matheuslc/prospectly/internal/infra/http/handlers"
	"github.com/matheuslc/prospectly/internal/infra/http/middleware"
	"github.com/matheuslc/prospectly/internal/infra/integration/textgen"
	"github.com/matheuslc/prospectly/internal/infra/queue"
	"github.com/matheuslc/prospectly/internal/usecase"
)

func main() {
	cfg := config.Load()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required")
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// RabbitMQ is optional: without a broker the service runs and simply
	// skips event publishing.
	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Ch)
	}

	// Repositories
	prospectRepo := database.NewProspectRepository(db)
	emailRepo := database.NewEmailRepository(db)

	// Integration clients
	generator := textgen.NewClient(textgen.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})

	// UseCases
	prospectUC := usecase.NewProspectUseCase(prospectRepo, emailRepo)
	generateUC := usecase.NewGenerateEmailUseCase(prospectRepo, emailRepo, generator, producer)

	// Handlers
	prospectHandler := handlers.NewProspectHandler(prospectUC)
	emailHandler := handlers.NewEmailHandler(generateUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, generator)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.CORSOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.SessionSecret))

		r.Get("/prospects", prospectHandler.List)
		r.Post("/prospects", prospectHandler.Create)
		r.Get("/prospects/{id}", prospectHandler.Get)
		r.Put("/prospects/{id}", prospectHandler.Update)
		r.Delete("/prospects/{id}", prospectHandler.Delete)
		r.Post("/generate-email", emailHandler.Generate)
	})

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		log.Printf("server listening on port %s", cfg.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
