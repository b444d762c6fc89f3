package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thisAbdU/amazon-pipeline/internal/config"
	"github.com/thisAbdU/amazon-pipeline/internal/products"
	"github.com/thisAbdU/amazon-pipeline/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	_ = godotenv.Load() // load .env if present; not fatal if missing

	cfg := config.FromEnv()

	if os.Getenv("GIN_MODE") != "" {
		gin.SetMode(os.Getenv("GIN_MODE"))
	}

	// graceful shutdown coordination
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := products.NewClient(cfg.APIBase)

	r := server.New(server.Options{
		Client:        client,
		PublicAPIBase: cfg.PublicAPIBase,
		TemplateGlob:  "web/templates/*.html",
		StaticDir:     "./web/static",
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server started on :%s (api: %s)", cfg.Port, cfg.APIBase)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server ListenAndServe: %v", err)
		}
	}()

	// wait for interrupt
	<-ctx.Done()
	log.Println("shutdown signal received")

	// stop accepting new requests, allow 15s to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server Shutdown: %v", err)
	}

	log.Println("graceful shutdown complete")
}
