package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"challengeHub/cmd/app"
	"challengeHub/internal/config"
	handlers "challengeHub/internal/handler"
	"challengeHub/internal/middleware"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	application := app.App(cfg)

	handler := handlers.NewHandlers(application.Services, application.DB, cfg)

	handlerChain := middleware.Chain(
		newRouter(handler),
		middleware.AuthMiddleware(application.Services.Auth),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
		chimiddleware.Recoverer,
		chimiddleware.RealIP,
		chimiddleware.RequestID,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server listening on %s (database %s)", addr, cfg.DB.DbNAME)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	application.Close(shutdownCtx)
}
