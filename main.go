package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrnikesb96-source/Entry-Blog-project/internal/config"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/db"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/handlers"
	"github.com/mrnikesb96-source/Entry-Blog-project/internal/models"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	store, err := db.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	if err := store.CleanupExpiredSessions(ctx); err != nil {
		log.Printf("warning: failed to cleanup expired sessions: %v", err)
	}

	if err := seedAdmin(ctx, store, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	h, err := handlers.New(store, cfg.SecureCookies)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.Mount("/", h.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// seedAdmin creates the single privileged account the first time the app
// runs against an empty database. Every later account registers as a member.
func seedAdmin(ctx context.Context, store *db.Store, cfg config.Config) error {
	total, err := store.CountUsers(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin, err := store.CreateUser(ctx, cfg.AdminUsername, cfg.AdminEmail, string(hash), models.RoleAdmin)
	if err != nil {
		return err
	}
	log.Printf("seeded admin account %q (id %d)", admin.Username, admin.ID)
	return nil
}
