package service

import (
	"context"
	"log/slog"
	"strings"

	"geoalert/internal/domain"
	"geoalert/internal/metrics"
	"geoalert/pkg/e"
)

// ReadStateTracker records which notifications a recipient has acknowledged.
// Read marks are per recipient; notifications themselves are shared.
type ReadStateTracker struct {
	repo    ReadStateRepository
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewReadStateTracker(repo ReadStateRepository, m *metrics.Metrics, logger *slog.Logger) *ReadStateTracker {
	return &ReadStateTracker{repo: repo, metrics: m, logger: logger}
}

func requireIDs(recipientID, notificationID string) error {
	if strings.TrimSpace(recipientID) == "" {
		return e.Validation("recipient_id", "required")
	}
	if strings.TrimSpace(notificationID) == "" {
		return e.Validation("notification_id", "required")
	}
	return nil
}

// MarkRead is idempotent.
func (t *ReadStateTracker) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	if err := requireIDs(recipientID, notificationID); err != nil {
		return err
	}
	if err := t.repo.Add(ctx, recipientID, notificationID); err != nil {
		return e.WrapError(ctx, "readState.MarkRead", err)
	}
	t.metrics.Acknowledged("read")
	return nil
}

func (t *ReadStateTracker) IsRead(ctx context.Context, recipientID, notificationID string) (bool, error) {
	if err := requireIDs(recipientID, notificationID); err != nil {
		return false, err
	}
	ok, err := t.repo.Has(ctx, recipientID, notificationID)
	if err != nil {
		return false, e.WrapError(ctx, "readState.IsRead", err)
	}
	return ok, nil
}

// UnreadCount counts the given notifications the recipient has not marked.
// Marks for notifications outside the list do not matter.
func (t *ReadStateTracker) UnreadCount(ctx context.Context, recipientID string, notifications []domain.Notification) (int, error) {
	read, err := t.readSet(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	unread := 0
	for _, n := range notifications {
		if _, ok := read[n.ID]; !ok {
			unread++
		}
	}
	return unread, nil
}

// MarkAllRead marks every notification in the list with one write.
func (t *ReadStateTracker) MarkAllRead(ctx context.Context, recipientID string, notifications []domain.Notification) error {
	if strings.TrimSpace(recipientID) == "" {
		return e.Validation("recipient_id", "required")
	}
	if len(notifications) == 0 {
		return nil
	}
	ids := make([]string, len(notifications))
	for i, n := range notifications {
		ids[i] = n.ID
	}
	if err := t.repo.Add(ctx, recipientID, ids...); err != nil {
		return e.WrapError(ctx, "readState.MarkAllRead", err)
	}
	t.metrics.Acknowledged("read_all")
	return nil
}

// ClearAll forgets every read mark of the recipient.
func (t *ReadStateTracker) ClearAll(ctx context.Context, recipientID string) error {
	if strings.TrimSpace(recipientID) == "" {
		return e.Validation("recipient_id", "required")
	}
	if err := t.repo.Clear(ctx, recipientID); err != nil {
		return e.WrapError(ctx, "readState.ClearAll", err)
	}
	t.metrics.Acknowledged("clear")
	t.logger.Info("read state cleared", slog.String("recipient_id", recipientID))
	return nil
}

func (t *ReadStateTracker) readSet(ctx context.Context, recipientID string) (map[string]struct{}, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, e.Validation("recipient_id", "required")
	}
	ids, err := t.repo.Members(ctx, recipientID)
	if err != nil {
		return nil, e.WrapError(ctx, "readState.Members", err)
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// NotificationCenter joins the dispatcher's notifications with one
// recipient's read state.
type NotificationCenter struct {
	dispatcher *Dispatcher
	tracker    *ReadStateTracker
	logger     *slog.Logger
}

func NewNotificationCenter(d *Dispatcher, t *ReadStateTracker, logger *slog.Logger) *NotificationCenter {
	return &NotificationCenter{dispatcher: d, tracker: t, logger: logger}
}

func (c *NotificationCenter) Feed(ctx context.Context, recipientID string, location *domain.Point) (*domain.Feed, error) {
	visible, err := c.dispatcher.Visible(ctx, recipientID, location)
	if err != nil {
		return nil, err
	}
	read, err := c.tracker.readSet(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	feed := &domain.Feed{Items: make([]domain.FeedItem, 0, len(visible))}
	for _, n := range visible {
		_, ok := read[n.ID]
		feed.Items = append(feed.Items, domain.FeedItem{Notification: n, Read: ok})
		if !ok {
			feed.Unread++
		}
	}
	return feed, nil
}

func (c *NotificationCenter) MarkRead(ctx context.Context, recipientID, notificationID string) error {
	if err := requireIDs(recipientID, notificationID); err != nil {
		return err
	}
	if _, err := c.dispatcher.Get(ctx, notificationID); err != nil {
		return err
	}
	return c.tracker.MarkRead(ctx, recipientID, notificationID)
}

func (c *NotificationCenter) MarkAllRead(ctx context.Context, recipientID string, location *domain.Point) error {
	visible, err := c.dispatcher.Visible(ctx, recipientID, location)
	if err != nil {
		return err
	}
	return c.tracker.MarkAllRead(ctx, recipientID, visible)
}

// Dismiss marks the notification read and then deletes it. The notification
// record is shared, so it disappears from every recipient's feed. Unknown ids
// are ErrNotFound and leave the read set untouched.
func (c *NotificationCenter) Dismiss(ctx context.Context, recipientID, notificationID string) error {
	if err := c.MarkRead(ctx, recipientID, notificationID); err != nil {
		return err
	}
	if err := c.dispatcher.Delete(ctx, notificationID); err != nil {
		return err
	}
	c.tracker.metrics.Acknowledged("dismiss")
	c.logger.Info("notification dismissed",
		slog.String("recipient_id", recipientID),
		slog.String("notification_id", notificationID),
	)
	return nil
}

func (c *NotificationCenter) ClearAll(ctx context.Context, recipientID string) error {
	return c.tracker.ClearAll(ctx, recipientID)
}
