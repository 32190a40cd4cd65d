package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"geoalert/internal/config"
	"geoalert/internal/domain"
	"geoalert/pkg/e"
)

// NotificationQueue is the consuming side of the outbox.
type NotificationQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error)
}

// PushPayload is what the push gateway receives for each notification.
type PushPayload struct {
	NotificationID string                  `json:"notification_id"`
	Kind           domain.NotificationKind `json:"kind"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	RecipientScope string                  `json:"recipient_scope"`
	Center         *domain.Point           `json:"center,omitempty"`
	RadiusKm       float64                 `json:"radius_km,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
}

func newPushPayload(n domain.Notification) PushPayload {
	p := PushPayload{
		NotificationID: n.ID,
		Kind:           n.Kind,
		Title:          n.Title,
		Message:        n.Message,
		RecipientScope: n.RecipientScope,
		CreatedAt:      n.CreatedAt,
	}
	if scope, err := domain.ParseGeoScope(n.RecipientScope); err == nil {
		center := scope.Center
		p.Center = &center
		p.RadiusKm = scope.RadiusKm
	}
	return p
}

// WebhookSender drains the outbox and POSTs every notification to the push
// gateway.
type WebhookSender struct {
	logger     *slog.Logger
	cfg        config.WebhookConfig
	queue      NotificationQueue
	http       *http.Client
	popTimeout time.Duration
	backoff    time.Duration
}

func NewWebhookSender(logger *slog.Logger, cfg config.WebhookConfig, q NotificationQueue) *WebhookSender {
	return &WebhookSender{
		logger:     logger,
		cfg:        cfg,
		queue:      q,
		http:       &http.Client{Timeout: 5 * time.Second},
		popTimeout: 5 * time.Second,
		backoff:    time.Second,
	}
}

// WithBackoff sets the base retry delay; attempt n waits n times this.
func (s *WebhookSender) WithBackoff(d time.Duration) *WebhookSender {
	s.backoff = d
	return s
}

func (s *WebhookSender) Run(ctx context.Context) {
	s.logger.Info("webhookSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhookSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		n, err := s.queue.BRPop(ctx, s.popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending webhook", slog.String("notification_id", n.ID))
		s.sendWithRetry(ctx, n)
	}
}

// sendWithRetry reports whether the gateway accepted the notification.
func (s *WebhookSender) sendWithRetry(ctx context.Context, n domain.Notification) bool {
	const maxRetries = 3

	body, err := json.Marshal(newPushPayload(n))
	if err != nil {
		s.logger.Error("marshal webhook payload failed", slog.String("error", err.Error()))
		return false
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return false
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", n.ID)

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < maxRetries {
			sleep(ctx, time.Duration(attempt)*s.backoff)
		}
	}
	return false
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
