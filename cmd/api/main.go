package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/avirani/leadscore/internal/infra/http/handlers"
	"github.com/avirani/leadscore/internal/infra/http/middleware"
	"github.com/avirani/leadscore/internal/infra/integration/scoring"
	"github.com/avirani/leadscore/internal/infra/mail"
	"github.com/avirani/leadscore/internal/infra/memory"
	"github.com/avirani/leadscore/internal/infra/queue"
	"github.com/avirani/leadscore/internal/usecase"
)

func main() {
	godotenv.Load()

	scoringURL := os.Getenv("SCORING_URL")
	if scoringURL == "" {
		scoringURL = "http://localhost:8000"
	}

	// RabbitMQ is optional: without it leads are still captured, only the
	// high score alerts are disabled.
	var rabbitMQ *queue.RabbitMQ
	if url := os.Getenv("AMQP_URL"); url != "" {
		var err error
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("⚠️ RabbitMQ unavailable, lead alerts disabled: %v", err)
			rabbitMQ = nil
		} else {
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
		}
	}

	// 1. Store
	store := memory.NewLeadStore()

	// 2. Gateways and adapters
	gateway := scoring.NewClient(scoringURL)

	var producer usecase.QueueProducerInterface
	if rabbitMQ != nil {
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	var alerts queue.AlertSender
	if os.Getenv("MAIL_HOST") != "" {
		mailPort := 587
		if v := os.Getenv("MAIL_PORT"); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				mailPort = p
			}
		}
		alerts = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)
	}

	// 3. Worker (consumes the queue and sends the email alerts)
	if rabbitMQ != nil {
		worker := queue.NewWorker(rabbitMQ.Ch, alerts, os.Getenv("LEAD_ALERT_TO"))
		go worker.Start(queue.QueueName)
	}

	// 4. UseCases
	captureUC := usecase.NewCaptureLeadUseCase(store, gateway, producer)
	exportUC := usecase.NewExportLeadsUseCase(store)

	form := usecase.NewLeadForm(captureUC)
	notice := handlers.NewNotice(0)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, store)
	formHandler := handlers.NewFormHandler(form, notice)
	exportHandler := handlers.NewExportHandler(exportUC, notice)

	var rabbitConn *amqp091.Connection
	if rabbitMQ != nil {
		rabbitConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(scoringURL, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.List)
	r.Get("/leads/export", exportHandler.Handle)

	r.Post("/form/fields", formHandler.UpdateField)
	r.Get("/form", formHandler.GetDraft)
	r.Post("/form/reset", formHandler.Reset)
	r.Post("/form/submit", formHandler.Submit)

	r.Get("/notice", notice.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":8080"
	log.Printf("🔥 Lead capture API running on %s", port)
	http.ListenAndServe(port, r)
}
