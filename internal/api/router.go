package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"geoalert/internal/api/handlers/http/admin"
	"geoalert/internal/api/handlers/http/public"
	"geoalert/internal/api/handlers/http/system"
	"geoalert/internal/config"
	"geoalert/internal/metrics"
	"geoalert/internal/middleware"
	"geoalert/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, m *metrics.Metrics, checks map[string]system.Check) *Server {
	govHandler := admin.NewHandler(logger, svc.ReportService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.ReportService, svc.ConversationService, svc.NotificationService)
	systemHandler := system.NewHandler(logger, checks)

	r := InitRouter(ctx, cfg, govHandler, publicHandler, systemHandler, m, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	govHandler *admin.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	m *metrics.Metrics,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		// GOVERNMENT
		api.Route("/gov", func(gr chi.Router) {
			gr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			gr.Use(middleware.Limit(ctx, cfg.Http.GovLimit.RPS, cfg.Http.GovLimit.Burst, 10*time.Minute, logger))

			gr.Get("/stats", govHandler.GovStats)
			gr.Get("/reports", govHandler.GovReportList)
			gr.Post("/reports", govHandler.GovReportCreate)

			gr.Route("/threads/{id}", func(tr chi.Router) {
				tr.Get("/", govHandler.GovThreadGet)
				tr.Delete("/", govHandler.GovThreadDelete)
				tr.Post("/responses", govHandler.GovResponseCreate)
			})
		})

		// PUBLIC
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(ctx, cfg.Http.PublicLimit.RPS, cfg.Http.PublicLimit.Burst, 5*time.Minute, logger))

			pr.Post("/reports", publicHandler.ReportCreate)
			pr.Get("/conversations", publicHandler.ConversationList)

			pr.Route("/threads/{id}", func(tr chi.Router) {
				tr.Get("/", publicHandler.ThreadGet)
				tr.Get("/conversation", publicHandler.ConversationGet)
				tr.Post("/replies", publicHandler.ReplyCreate)
			})

			pr.Route("/notifications", func(nr chi.Router) {
				nr.Get("/", publicHandler.NotificationFeed)
				nr.Post("/read-all", publicHandler.NotificationReadAll)
				nr.Post("/{id}/read", publicHandler.NotificationRead)
				nr.Post("/{id}/dismiss", publicHandler.NotificationDismiss)
			})

			pr.Delete("/readstate/{recipient_id}", publicHandler.ReadStateClear)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/ready", systemHandler.SystemReady)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
