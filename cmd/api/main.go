package main

import (
	"log"
	"net/http"
	"os"
	"time"

	_ "animal-facts/docs"
	"animal-facts/internal/platform/httpclient"
	"animal-facts/internal/platform/logger"
	"animal-facts/internal/router"

	"github.com/joho/godotenv"
)

// @title        Animal Facts API
// @version      1.0
// @description  Devuelve facts de animales delegando en providers HTTP upstream.
func main() {
	// .env local para dev; en deploy las vars vienen del entorno
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	lg := logger.NewFromEnv()

	// un solo cliente HTTP para todos los upstreams (connection pooling)
	hc := httpclient.New(httpclient.DefaultTimeout)

	r := router.NewRouter(router.Options{
		Logger:     lg,
		HTTPClient: hc,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", logger.Fields{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
