package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"geoalert/internal/domain"
	"geoalert/internal/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type GovernmentReports interface {
	SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error)
	SubmitResponse(ctx context.Context, req domain.SubmitResponseRequest) (*domain.Response, error)
	GetThread(ctx context.Context, threadID string) (*domain.Thread, error)
	ListReports(ctx context.Context, category domain.Category) ([]domain.Report, error)
	DeleteThread(ctx context.Context, threadID string) error
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.AlertStats, error)
}

// Handler serves the government manager console.
type Handler struct {
	logger  *slog.Logger
	Reports GovernmentReports
	Stats   StatsGetter
}

func NewHandler(logger *slog.Logger, reports GovernmentReports, stats StatsGetter) *Handler {
	return &Handler{
		logger:  logger,
		Reports: reports,
		Stats:   stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// GovReportList lists reports newest first, optionally for one category.
func (h *Handler) GovReportList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("GovReportList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	category := domain.Category(r.URL.Query().Get("category"))
	reports, err := h.Reports.ListReports(r.Context(), category)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reports listed", slog.String("category", string(category)), slog.Int("count", len(reports)))
	h.writeJSON(w, http.StatusOK, domain.ListReportsResponse{Reports: reports, Total: len(reports)})
}

// GovReportCreate publishes an official report. The author role is always
// government, which is what allows the instruction category.
func (h *Handler) GovReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("GovReportCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.BindJSON[domain.SubmitReportRequest](r)
	if err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}
	req.AuthorRole = domain.RoleGovernment

	report, err := h.Reports.SubmitReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("government report created", slog.String("id", report.ID), slog.String("category", string(report.Category)))
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) GovThreadGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("GovThreadGet", slog.String("remote", r.RemoteAddr))

	thread, err := h.Reports.GetThread(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, thread)
}

func (h *Handler) GovResponseCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("GovResponseCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.BindJSON[domain.SubmitResponseRequest](r, func(req *domain.SubmitResponseRequest) {
		req.ThreadID = chi.URLParam(r, "id")
	})
	if err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	resp, err := h.Reports.SubmitResponse(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("response created", slog.String("thread_id", resp.ThreadID), slog.String("id", resp.ID))
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GovThreadDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("GovThreadDelete", slog.String("remote", r.RemoteAddr))

	id := chi.URLParam(r, "id")
	if err := h.Reports.DeleteThread(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("thread deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GovStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("GovStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("stats success", slog.Int("answered", stats.AnsweredThreads), slog.Int("unanswered", stats.UnansweredThreads))
	h.writeJSON(w, http.StatusOK, stats)
}
