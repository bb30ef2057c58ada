package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"railbook/internal/config"
	api "railbook/internal/http"
	"railbook/internal/http/handlers"
	"railbook/internal/memstore"
	"railbook/internal/repositories"
	"railbook/internal/seed"
	"railbook/internal/services"
	"railbook/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	st := openStore(env)

	if err := seed.Initialize(st, env.HorizonDays); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	payments := &services.PaymentService{
		Store: st,
		Delay: time.Duration(env.PaymentDelayMS) * time.Millisecond,
	}
	bookings := services.BookingService{Store: st, Payments: payments}
	payments.Compensate = bookings.CompensateFailedPayment

	if err := payments.RecoverPending(); err != nil {
		log.Printf("warning: pending payment recovery failed: %v", err)
	}

	ctx, cancelBackground := context.WithCancel(context.Background())
	go seed.RefreshLoop(ctx, st, env.HorizonDays)

	a := handlers.API{
		Store:    st,
		Payments: payments,
		Refresh: func() error {
			return seed.EnsureAvailability(st, env.HorizonDays)
		},
	}
	r := api.NewRouter(env, a)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s (store=%s)", env.AppAddr, env.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	cancelBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	config.CloseDB()

	log.Println("server stopped cleanly")
}

func openStore(env config.Env) store.Store {
	if env.StoreDriver == "memory" {
		log.Println("using in-memory store")
		return memstore.New()
	}
	db := config.ConnectDB(env.DBDSN)
	if err := repositories.EnsureSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}
	return repositories.NewStore(db)
}
