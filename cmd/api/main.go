package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/database"
	"github.com/xavierca1/leadqual/internal/infra/http/handlers"
	"github.com/xavierca1/leadqual/internal/infra/http/middleware"
	"github.com/xavierca1/leadqual/internal/infra/integration/openai"
	"github.com/xavierca1/leadqual/internal/infra/mail"
	"github.com/xavierca1/leadqual/internal/infra/notify"
	"github.com/xavierca1/leadqual/internal/infra/queue"
	"github.com/xavierca1/leadqual/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Repository: Postgres when configured, seeded in-memory otherwise.
	var db *sql.DB
	var repo entity.LeadRepositoryInterface
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatalf("❌ database unreachable: %v", err)
		}
		defer db.Close()
		repo = database.NewLeadRepository(db)
	} else {
		log.Println("⚠️ DATABASE_URL not set, using in-memory store with demo leads")
		memRepo := database.NewMemoryLeadRepository()
		memRepo.SeedDemoLeads()
		repo = memRepo
	}

	// 2. Mail sender for sales alerts (optional).
	var emailService usecase.EmailService
	var mailSender *mail.EmailSender
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port := 587
		if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
			port = p
		}
		mailSender = mail.NewEmailSender(
			host, port, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			getEnvOrDefault("MAIL_FROM", "no-reply@leadqual.app"),
		)
		emailService = mailSender
	}
	alertEmail := os.Getenv("SALES_ALERT_EMAIL")

	// 3. Event bus (optional). When present, the worker consumes lead.saved
	// events and raises the hot-lead alert email off the request path.
	var producer usecase.EventProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		var err error
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("❌ RabbitMQ unreachable: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		var alerts queue.AlertSender
		if mailSender != nil {
			alerts = mailSender
		}
		worker := queue.NewWorker(rabbitMQ.Ch, alerts, alertEmail)
		go worker.Start(queue.QueueName)
	}

	// 4. External collaborators.
	gateway := openai.NewClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_BASE_URL"))
	notifier := notify.NewWebhookNotifier(os.Getenv("WEBHOOK_URL"))

	// 5. UseCases.
	chatUC := usecase.NewProcessChatTurnUseCase(
		repo, gateway, usecase.NewSentinelParser(), notifier,
		producer, emailService, alertEmail,
	)
	saveUC := usecase.NewSaveLeadUseCase(repo, producer)
	metricsUC := usecase.NewGetDashboardMetricsUseCase(repo)

	// 6. Handlers.
	chatHandler := handlers.NewChatHandler(chatUC)
	leadHandler := handlers.NewLeadHandler(repo, saveUC)
	metricsHandler := handlers.NewMetricsHandler(metricsUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 7. Router.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(getEnvOrDefault("CORS_ORIGINS", "*"), ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/chat", chatHandler.Handle)
		api.Get("/leads", leadHandler.List)
		api.Post("/leads", leadHandler.Create)
		api.Get("/leads/{id}", leadHandler.Get)
		api.Delete("/leads/{id}", leadHandler.Delete)
		api.Get("/metrics", metricsHandler.Handle)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + getEnvOrDefault("PORT", "8080")
	log.Printf("🔥 LeadQual API listening on %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		log.Fatal(err)
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
