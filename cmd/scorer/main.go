package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avirani/leadscore/internal/scorer"
)

func main() {
	h := scorer.NewHandler()

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", h.Root)
	r.Post("/score", h.ScoreLead)
	r.Get("/leads", h.GetLeads)
	r.Get("/health", h.Health)

	port := ":8000"
	log.Printf("🔥 Lead scoring service running on %s", port)
	http.ListenAndServe(port, r)
}
