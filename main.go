package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arheb/internal/auth"
	intconfig "arheb/internal/config"
	"arheb/internal/db"
	"arheb/internal/fixtures"
	api "arheb/internal/http"
	"arheb/internal/http/handlers"
	"arheb/internal/repositories"
	"arheb/internal/services"
	"arheb/internal/tracking"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	conn := intconfig.ConnectDB(env.DBDSN)
	defer intconfig.CloseDB()

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	fx, err := fixtures.Load(env.FixturesDir)
	if err != nil {
		log.Fatalf("fixture load failed: %v", err)
	}
	seedCatalog(fx)

	tokens := auth.NewTokens(env.JWTSecret)

	var sender services.OTPSender
	if env.FirebaseAPIKey != "" {
		sender = services.FirebaseOTP{APIKey: env.FirebaseAPIKey}
	} else {
		log.Println("FIREBASE_API_KEY not set, using local OTP codes (dev only)")
		sender = services.LocalOTP{Repo: repositories.OTPRepository{}}
	}

	registry := tracking.NewRegistry()
	trackingWS := &tracking.Server{
		Gate:   tracking.Gate{Tokens: tokens, Orders: repositories.OrderRepository{}},
		Bridge: tracking.Bridge{Registry: registry},
	}

	handlers.SetTokens(tokens)
	handlers.SetFixtures(fx)
	handlers.SetOTPSender(sender)
	handlers.SetRegistry(registry)

	r := api.NewRouter(env, tokens, trackingWS)

	// no read/write timeouts, the tracking websocket is long-lived
	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

func seedCatalog(fx *fixtures.Fixtures) {
	catalog := repositories.CatalogRepository{}
	if err := catalog.SeedCategories(fx.Categories); err != nil {
		log.Printf("warning: category seed failed: %v", err)
	}
	if err := catalog.SeedHome(fx.Banners, fx.HomeCats, fx.HomeStores, fx.Offers); err != nil {
		log.Printf("warning: home seed failed: %v", err)
	}
	if err := (repositories.StoreRepository{}).SeedStores(fx.Stores); err != nil {
		log.Printf("warning: store seed failed: %v", err)
	}
	if err := (repositories.ContactRepository{}).SeedDefault("support@arheb.app", "+201000000000"); err != nil {
		log.Printf("warning: contact seed failed: %v", err)
	}
}
