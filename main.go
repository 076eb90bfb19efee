package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "go.uber.org/automaxprocs"

	"disaster-suggest/suggest"
)

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
	Service string `json:"service"`
}

const VERSION = "0.1.0"

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.Println("Starting Disaster Suggestion Service...")

	cfg := suggest.ConfigFromEnv()

	var gen suggest.TextGenerator
	if cfg.HasCredential() {
		g, err := suggest.NewGenerator(cfg)
		if err != nil {
			log.Fatalf("Failed to init suggestion provider: %v", err)
		}
		gen = g
		log.Printf("Suggestion provider %s ready (model %s)", cfg.Provider, cfg.Model)
	} else {
		log.Println("Warning: no provider API key configured, serving offline suggestions")
	}

	svc := suggest.NewService(cfg, gen)

	srv := &http.Server{
		Handler:     newRouter(cfg, svc),
		Addr:        cfg.ListenAddr,
		ReadTimeout: 15 * time.Second,
	}

	log.Printf("Disaster Suggestion Service v%s starting on %s", VERSION, srv.Addr)

	// Setup graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func newRouter(cfg suggest.Config, svc *suggest.Service) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	r.HandleFunc("/healthz", healthHandler).Methods("GET")
	r.HandleFunc("/", rootHandler).Methods("GET")
	registerSuggestRoutes(r, svc)

	var h http.Handler = r
	h = corsMiddleware(cfg.AllowedOrigins)(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	return handlers.CombinedLoggingHandler(os.Stdout, h)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := HealthResponse{
		OK:      true,
		Version: VERSION,
		Service: "disaster-suggest",
	}

	json.NewEncoder(w).Encode(response)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]string{
		"status": "ML Backend is running",
	})
}
