package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tiagorb/enrollment-console/internal/config"
	"github.com/tiagorb/enrollment-console/internal/handler"
	"github.com/tiagorb/enrollment-console/internal/localstore"
	"github.com/tiagorb/enrollment-console/internal/record"
	"github.com/tiagorb/enrollment-console/internal/roster"
	"github.com/tiagorb/enrollment-console/internal/service"
)

// @title           School Enrollment Console API
// @version         1.0
// @description     Administrative console for student enrollment and class transfers.

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	cfg := config.Load()

	// ── Local store (preferences, transfer tally) ────────
	local, err := localstore.Open(cfg.LocalStore.Path)
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	defer local.Close()

	// ── Record service client ────────────────────────────
	recordClient := record.NewClient(&cfg.Record)

	// ── Roster mirror ────────────────────────────────────
	store := roster.NewStore()

	// ── Services ─────────────────────────────────────────
	enrollmentService := service.NewEnrollmentService(store, recordClient, local)
	exportService := service.NewExportService(store)
	preferenceService := service.NewPreferenceService(local)

	// Initial mirror pull; the console still starts if the record service
	// is down, POST /api/v1/refresh retries it.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Record.Timeout)
	if err := enrollmentService.Refresh(ctx); err != nil {
		log.Printf("Warning: initial roster refresh failed: %v", err)
	}
	cancel()

	// ── Handlers ─────────────────────────────────────────
	studentHandler := handler.NewStudentHandler(enrollmentService)
	rosterHandler := handler.NewRosterHandler(enrollmentService)
	exportHandler := handler.NewExportHandler(exportService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)

	// ── Router ───────────────────────────────────────────
	router := handler.NewRouter(
		studentHandler,
		rosterHandler,
		exportHandler,
		preferenceHandler,
	)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Console listening on port %s (mode: %s)", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
