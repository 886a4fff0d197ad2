package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charlesw/alexandria-crm/internal/config"
	"github.com/charlesw/alexandria-crm/internal/infra/database"
	"github.com/charlesw/alexandria-crm/internal/infra/http/handlers"
	"github.com/charlesw/alexandria-crm/internal/infra/http/middleware"
	"github.com/charlesw/alexandria-crm/internal/infra/mail"
	"github.com/charlesw/alexandria-crm/internal/infra/store"
	"github.com/charlesw/alexandria-crm/internal/infra/store/sheets"
	"github.com/charlesw/alexandria-crm/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting alexandria-crm api")

	// 1. Record store
	var tableStore store.TableStore
	switch cfg.StoreBackend {
	case "memory":
		tableStore = store.NewMemStore()
		logger.Warn("using in-memory record store, data will not survive a restart")
	default:
		tableStore = sheets.NewClient(cfg.SheetsBaseURL, cfg.SpreadsheetID, cfg.SheetsToken)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Bootstrap(ctx, tableStore); err != nil {
		logger.Error("failed to bootstrap tables", "error", err)
		os.Exit(1)
	}
	logger.Info("record store ready", "backend", cfg.StoreBackend)

	// 2. Repositories
	contactRepo := database.NewContactRepository(tableStore)
	noteRepo := database.NewNoteRepository(tableStore)
	emailLogRepo := database.NewEmailLogRepository(tableStore)

	// 3. Mail sender
	accounts, _ := cfg.Accounts()
	mailAccounts := make([]mail.Account, 0, len(accounts))
	for _, a := range accounts {
		mailAccounts = append(mailAccounts, mail.Account{Key: a.Key, DisplayName: a.Name, Address: a.Address})
	}
	mailSender := mail.NewOutreachSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, mailAccounts)

	// 4. UseCases
	activity := usecase.NewActivityAggregator(noteRepo, emailLogRepo)
	addContactUC := usecase.NewAddContactUseCase(contactRepo)
	updateContactUC := usecase.NewUpdateContactUseCase(contactRepo)
	addNoteUC := usecase.NewAddNoteUseCase(noteRepo)
	sendOutreachUC := usecase.NewSendOutreachUseCase(contactRepo, emailLogRepo, mailSender)
	dashboardUC := usecase.NewDashboardUseCase(contactRepo, activity)
	pipelineUC := usecase.NewPipelineUseCase(contactRepo)
	exportUC := usecase.NewExportContactsUseCase(contactRepo)

	// 5. Handlers
	contactHandler := handlers.NewContactHandler(addContactUC, updateContactUC, dashboardUC, pipelineUC)
	noteHandler := handlers.NewNoteHandler(addNoteUC, noteRepo)
	emailHandler := handlers.NewEmailHandler(sendOutreachUC, emailLogRepo)
	exportHandler := handlers.NewExportHandler(exportUC)
	healthHandler := handlers.NewHealthHandler(
		tableStore, cfg.MailHost != "", database.TableContacts, database.ContactHeaders,
	)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", contactHandler.DashboardHandler)
		r.Post("/", contactHandler.CreateContactHandler)
		r.Get("/export", exportHandler.ExportContactsHandler)
		r.Put("/{id}", contactHandler.UpdateContactHandler)
		r.Get("/{id}/notes", noteHandler.ListNotesHandler)
		r.Post("/{id}/notes", noteHandler.AddNoteHandler)
		r.Get("/{id}/emails", emailHandler.ListContactEmailsHandler)
		r.Post("/{id}/outreach", emailHandler.SendOutreachHandler)
	})
	r.Get("/pipeline", contactHandler.PipelineHandler)
	r.Get("/emails", emailHandler.ListAllEmailsHandler)

	logger.Info("server listening", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: lvl, TimeFormat: time.Kitchen})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
