package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "roadbuddy/internal/config"
	"roadbuddy/internal/domain/models"
	router "roadbuddy/internal/http"
	"roadbuddy/internal/http/handlers"
	"roadbuddy/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	hd := handlers.New(
		repositories.NewTripStore(loadSeedTrips(env)...),
		repositories.NewBookingStore(),
		repositories.NewUserDirectory(repositories.DemoUsers()...),
	)
	hd.StrictSeats = env.StrictSeatCheck
	hd.DefaultUserID = env.DefaultUserID
	if env.StrictSeatCheck {
		log.Println("strict seat check enabled: overbooking is rejected")
	}

	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("RoadBuddy API listening on %s (%d trips loaded)", env.AppAddr(), hd.Trips.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

// loadSeedTrips reads startup trips from MySQL when DB_DSN is set and falls
// back to the built-in sample trips.
func loadSeedTrips(env intconfig.Env) []models.Trip {
	if env.DBDSN == "" {
		return repositories.SampleTrips()
	}

	db, err := intconfig.OpenDB(env.DBDSN)
	if err != nil {
		log.Fatalf("trip source: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trips, err := repositories.TripSeedRepository{DB: db}.LoadTrips(ctx)
	if err != nil {
		log.Fatalf("load trips: %v", err)
	}
	if len(trips) == 0 {
		log.Println("trips table empty or missing, using sample trips")
		return repositories.SampleTrips()
	}
	return trips
}
