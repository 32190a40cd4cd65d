package public

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"geoalert/internal/domain"
	"geoalert/internal/middleware"
	"geoalert/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type CitizenReports interface {
	SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error)
	SubmitReply(ctx context.Context, req domain.SubmitReplyRequest) (*domain.Reply, error)
	GetThread(ctx context.Context, threadID string) (*domain.Thread, error)
}

type Conversations interface {
	Assemble(ctx context.Context, threadID string) ([]domain.Message, error)
	ListConversations(ctx context.Context, authorID string) ([]domain.Conversation, error)
}

type Notifications interface {
	Feed(ctx context.Context, recipientID string, location *domain.Point) (*domain.Feed, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	MarkAllRead(ctx context.Context, recipientID string, location *domain.Point) error
	Dismiss(ctx context.Context, recipientID, notificationID string) error
	ClearAll(ctx context.Context, recipientID string) error
}

type Handler struct {
	logger        *slog.Logger
	Reports       CitizenReports
	Conversations Conversations
	Notifications Notifications
}

func NewHandler(logger *slog.Logger, reports CitizenReports, conversations Conversations, notifications Notifications) *Handler {
	return &Handler{
		logger:        logger,
		Reports:       reports,
		Conversations: conversations,
		Notifications: notifications,
	}
}

// ReportCreate files a citizen report. Role is always citizen on this route.
func (h *Handler) ReportCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReportCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.BindJSON[domain.SubmitReportRequest](r)
	if err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}
	req.AuthorRole = domain.RoleCitizen

	report, err := h.Reports.SubmitReport(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created",
		slog.String("id", report.ID),
		slog.String("category", string(report.Category)),
		slog.Int("nearby", report.NearbyCount),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ThreadGet(w http.ResponseWriter, r *http.Request) {
	thread, err := h.Reports.GetThread(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, thread)
}

func (h *Handler) ConversationGet(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Conversations.Assemble(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (h *Handler) ReplyCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ReplyCreate", slog.String("remote", r.RemoteAddr))

	req, err := middleware.BindJSON[domain.SubmitReplyRequest](r, func(req *domain.SubmitReplyRequest) {
		req.ThreadID = chi.URLParam(r, "id")
	})
	if err != nil {
		l.Warn("invalid request", slog.String("error", err.Error()))
		h.handleError(w, r, err)
		return
	}

	reply, err := h.Reports.SubmitReply(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("reply created", slog.String("thread_id", reply.ThreadID), slog.String("id", reply.ID))
	h.writeJSON(w, http.StatusCreated, reply)
}

func (h *Handler) ConversationList(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("author_id")
	conversations, err := h.Conversations.ListConversations(r.Context(), authorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"conversations": conversations, "total": len(conversations)})
}

// NotificationFeed returns the recipient's feed. lat and lng are optional
// but must be given together.
func (h *Handler) NotificationFeed(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	recipientID := q.Get("recipient_id")
	if recipientID == "" {
		h.handleError(w, r, e.Validation("recipient_id", "required"))
		return
	}
	location, err := parseLocation(q.Get("lat"), q.Get("lng"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	feed, err := h.Notifications.Feed(r.Context(), recipientID, location)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("feed served", slog.String("recipient_id", recipientID), slog.Int("items", len(feed.Items)), slog.Int("unread", feed.Unread))
	h.writeJSON(w, http.StatusOK, feed)
}

func (h *Handler) NotificationRead(w http.ResponseWriter, r *http.Request) {
	req, err := middleware.BindJSON[domain.ReadRequest](r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Notifications.MarkRead(r.Context(), req.RecipientID, chi.URLParam(r, "id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) NotificationReadAll(w http.ResponseWriter, r *http.Request) {
	req, err := middleware.BindJSON[domain.ReadAllRequest](r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	location, err := pointOf(req.Lat, req.Lng)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Notifications.MarkAllRead(r.Context(), req.RecipientID, location); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotificationDismiss removes the notification for every recipient.
func (h *Handler) NotificationDismiss(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	req, err := middleware.BindJSON[domain.ReadRequest](r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Notifications.Dismiss(r.Context(), req.RecipientID, id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("notification dismissed", slog.String("id", id), slog.String("recipient_id", req.RecipientID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ReadStateClear(w http.ResponseWriter, r *http.Request) {
	if err := h.Notifications.ClearAll(r.Context(), chi.URLParam(r, "recipient_id")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
