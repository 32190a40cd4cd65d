package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"geoalert/internal/domain"
	"geoalert/internal/metrics"
	"geoalert/pkg/e"
)

const (
	reportPrefix   = "report:"
	responsePrefix = "response:"
	replyPrefix    = "reply:"
)

func reportKey(id string) string { return reportPrefix + id }

func responseKey(threadID, id string) string { return responsePrefix + threadID + ":" + id }

func replyKey(threadID, id string) string { return replyPrefix + threadID + ":" + id }

func threadScopedPrefix(prefix, threadID string) string { return prefix + threadID + ":" }

// AlertStore persists reports, responses and replies and announces every
// committed mutation on the event bus. Writes are serialized so that events
// leave in commit order.
type AlertStore struct {
	kv      RecordStore
	events  EventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	mu sync.Mutex
}

func NewAlertStore(kv RecordStore, events EventPublisher, m *metrics.Metrics, logger *slog.Logger) *AlertStore {
	return &AlertStore{
		kv:      kv,
		events:  events,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source. Used by tests that need ties.
func (s *AlertStore) WithClock(now func() time.Time) *AlertStore {
	s.now = now
	return s
}

func validateReport(r *domain.Report) error {
	if strings.TrimSpace(r.AuthorID) == "" {
		return e.Validation("author_id", "required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return e.Validation("text", "required")
	}
	if !r.Category.Valid() {
		return e.Validation("category", fmt.Sprintf("unknown category %q", r.Category))
	}
	switch r.AuthorRole {
	case "":
		r.AuthorRole = domain.RoleCitizen
	case domain.RoleCitizen, domain.RoleGovernment:
	default:
		return e.Validation("author_role", fmt.Sprintf("unknown role %q", r.AuthorRole))
	}
	if r.Category == domain.CategoryInstruction && r.AuthorRole != domain.RoleGovernment {
		return e.Validation("category", "instruction reports are government only")
	}
	if r.Category == domain.CategoryAttack && r.AuthorRole != domain.RoleCitizen {
		return e.Validation("category", "attack reports are citizen only")
	}
	if r.Origin != nil {
		if err := r.Origin.Validate(); err != nil {
			return err
		}
	}
	if r.Category == domain.CategoryAttack && r.Origin == nil && strings.TrimSpace(r.LocationLabel) == "" {
		return e.Validation("origin", "attack report needs an origin or a location label")
	}
	return nil
}

// AppendReport stores a new thread root. ID and CreatedAt are assigned when
// empty.
func (s *AlertStore) AppendReport(ctx context.Context, r *domain.Report) (string, error) {
	if r == nil {
		return "", e.Validation("report", "required")
	}
	if err := validateReport(r); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.claimID(ctx, "report", r.ID, reportKey); err != nil {
		return "", err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	if err := s.put(ctx, reportKey(r.ID), r); err != nil {
		return "", e.WrapError(ctx, "alertStore.AppendReport", err)
	}

	stored := *r
	s.events.Publish(ctx, domain.Event{
		Type:       domain.EventReportCreated,
		ThreadID:   r.ID,
		Report:     &stored,
		OccurredAt: r.CreatedAt,
	})
	s.metrics.ReportCreated(string(r.Category))
	s.logger.Info("report appended",
		slog.String("thread_id", r.ID),
		slog.String("category", string(r.Category)),
		slog.Bool("has_origin", r.Origin != nil),
	)
	return r.ID, nil
}

// AppendResponse adds a government answer to an existing thread. The response
// inherits the root's origin and label unless it carries its own.
func (s *AlertStore) AppendResponse(ctx context.Context, r *domain.Response) (string, error) {
	if r == nil {
		return "", e.Validation("response", "required")
	}
	if strings.TrimSpace(r.AuthorID) == "" {
		return "", e.Validation("author_id", "required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return "", e.Validation("text", "required")
	}
	if r.Origin != nil {
		if err := r.Origin.Validate(); err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root, err := s.GetReport(ctx, r.ThreadID)
	if err != nil {
		return "", err
	}
	if r.Origin == nil && root.Origin != nil {
		origin := *root.Origin
		r.Origin = &origin
	}
	if r.LocationLabel == "" {
		r.LocationLabel = root.LocationLabel
	}
	if err := s.claimID(ctx, "response", r.ID, func(id string) string { return responseKey(r.ThreadID, id) }); err != nil {
		return "", err
	}
	if err := stampAfterRoot(&r.CreatedAt, root, s.now); err != nil {
		return "", err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if err := s.put(ctx, responseKey(r.ThreadID, r.ID), r); err != nil {
		return "", e.WrapError(ctx, "alertStore.AppendResponse", err)
	}

	stored := *r
	s.events.Publish(ctx, domain.Event{
		Type:       domain.EventResponseCreated,
		ThreadID:   r.ThreadID,
		Report:     root,
		Response:   &stored,
		OccurredAt: r.CreatedAt,
	})
	s.metrics.ResponseCreated()
	s.logger.Info("response appended", slog.String("thread_id", r.ThreadID), slog.String("response_id", r.ID))
	return r.ID, nil
}

func (s *AlertStore) AppendReply(ctx context.Context, r *domain.Reply) (string, error) {
	if r == nil {
		return "", e.Validation("reply", "required")
	}
	if strings.TrimSpace(r.AuthorID) == "" {
		return "", e.Validation("author_id", "required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return "", e.Validation("text", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root, err := s.GetReport(ctx, r.ThreadID)
	if err != nil {
		return "", err
	}
	if err := s.claimID(ctx, "reply", r.ID, func(id string) string { return replyKey(r.ThreadID, id) }); err != nil {
		return "", err
	}
	if err := stampAfterRoot(&r.CreatedAt, root, s.now); err != nil {
		return "", err
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	if err := s.put(ctx, replyKey(r.ThreadID, r.ID), r); err != nil {
		return "", e.WrapError(ctx, "alertStore.AppendReply", err)
	}

	stored := *r
	s.events.Publish(ctx, domain.Event{
		Type:       domain.EventReplyCreated,
		ThreadID:   r.ThreadID,
		Reply:      &stored,
		OccurredAt: r.CreatedAt,
	})
	s.metrics.ReplyCreated()
	s.logger.Info("reply appended", slog.String("thread_id", r.ThreadID), slog.String("reply_id", r.ID))
	return r.ID, nil
}

// claimID checks a caller-supplied id before a create. Records are
// create-only, so an id already stored under key(id) is a conflict. Empty ids
// pass and are assigned by the caller.
func (s *AlertStore) claimID(ctx context.Context, kind, id string, key func(string) string) error {
	if id == "" {
		return nil
	}
	if strings.Contains(id, ":") {
		return e.Validation("id", "must not contain ':'")
	}
	_, err := s.kv.Get(ctx, key(id))
	switch {
	case err == nil:
		return fmt.Errorf("%s %s: %w", kind, id, e.ErrConflict)
	case errors.Is(err, e.ErrNotFound):
		return nil
	default:
		return e.WrapError(ctx, "alertStore.claimID", err)
	}
}

// stampAfterRoot defaults an empty timestamp to now and rejects one that
// predates the thread root, keeping a thread ordered root first.
func stampAfterRoot(at *time.Time, root *domain.Report, now func() time.Time) error {
	if at.IsZero() {
		*at = now()
	}
	if at.Before(root.CreatedAt) {
		return e.Validation("created_at", "before the thread root")
	}
	return nil
}

func (s *AlertStore) GetReport(ctx context.Context, id string) (*domain.Report, error) {
	if id == "" {
		return nil, fmt.Errorf("empty thread id: %w", e.ErrThreadNotFound)
	}
	raw, err := s.kv.Get(ctx, reportKey(id))
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", id, e.ErrThreadNotFound)
		}
		return nil, e.WrapError(ctx, "alertStore.GetReport", err)
	}
	var r domain.Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, e.Wrap("decode report "+id, err)
	}
	return &r, nil
}

// GetThread returns the root with its responses and replies, each in
// creation order.
func (s *AlertStore) GetThread(ctx context.Context, threadID string) (*domain.Thread, error) {
	root, err := s.GetReport(ctx, threadID)
	if err != nil {
		return nil, err
	}

	responses, err := scanDecode[domain.Response](ctx, s.kv, threadScopedPrefix(responsePrefix, threadID))
	if err != nil {
		return nil, err
	}
	replies, err := scanDecode[domain.Reply](ctx, s.kv, threadScopedPrefix(replyPrefix, threadID))
	if err != nil {
		return nil, err
	}
	sortResponses(responses)
	sortReplies(replies)

	return &domain.Thread{Report: *root, Responses: responses, Replies: replies}, nil
}

// ListReportsByCategory returns reports newest first. An empty category lists
// every report.
func (s *AlertStore) ListReportsByCategory(ctx context.Context, category domain.Category) ([]domain.Report, error) {
	return s.listReports(ctx, func(r *domain.Report) bool {
		return category == "" || r.Category == category
	})
}

func (s *AlertStore) ListReportsByAuthor(ctx context.Context, authorID string) ([]domain.Report, error) {
	return s.listReports(ctx, func(r *domain.Report) bool { return r.AuthorID == authorID })
}

// ListThreads loads every thread with three prefix scans.
func (s *AlertStore) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	reports, err := s.ListReportsByCategory(ctx, "")
	if err != nil {
		return nil, err
	}
	responses, err := scanDecode[domain.Response](ctx, s.kv, responsePrefix)
	if err != nil {
		return nil, err
	}
	replies, err := scanDecode[domain.Reply](ctx, s.kv, replyPrefix)
	if err != nil {
		return nil, err
	}
	sortResponses(responses)
	sortReplies(replies)

	byThread := make(map[string]*domain.Thread, len(reports))
	threads := make([]domain.Thread, len(reports))
	for i := range reports {
		threads[i].Report = reports[i]
		byThread[reports[i].ID] = &threads[i]
	}
	for _, r := range responses {
		if t, ok := byThread[r.ThreadID]; ok {
			t.Responses = append(t.Responses, r)
		}
	}
	for _, r := range replies {
		if t, ok := byThread[r.ThreadID]; ok {
			t.Replies = append(t.Replies, r)
		}
	}
	return threads, nil
}

// DeleteThread removes the root and everything under it. Deleting a missing
// thread succeeds and publishes nothing.
func (s *AlertStore) DeleteThread(ctx context.Context, threadID string) error {
	if threadID == "" {
		return e.Validation("thread_id", "required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, 8)
	if _, err := s.kv.Get(ctx, reportKey(threadID)); err == nil {
		keys = append(keys, reportKey(threadID))
	} else if !errors.Is(err, e.ErrNotFound) {
		return e.WrapError(ctx, "alertStore.DeleteThread", err)
	}
	for _, prefix := range []string{responsePrefix, replyPrefix} {
		entries, err := s.kv.Scan(ctx, threadScopedPrefix(prefix, threadID))
		if err != nil {
			return e.WrapError(ctx, "alertStore.DeleteThread", err)
		}
		for _, en := range entries {
			keys = append(keys, en.Key)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.kv.Delete(ctx, keys...); err != nil {
		return e.WrapError(ctx, "alertStore.DeleteThread", err)
	}

	s.events.Publish(ctx, domain.Event{
		Type:       domain.EventThreadDeleted,
		ThreadID:   threadID,
		OccurredAt: s.now(),
	})
	s.metrics.ThreadDeleted()
	s.logger.Info("thread deleted", slog.String("thread_id", threadID), slog.Int("records", len(keys)))
	return nil
}

func (s *AlertStore) listReports(ctx context.Context, keep func(*domain.Report) bool) ([]domain.Report, error) {
	all, err := scanDecode[domain.Report](ctx, s.kv, reportPrefix)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *AlertStore) put(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, b)
}

func scanDecode[T any](ctx context.Context, kv RecordStore, prefix string) ([]T, error) {
	entries, err := kv.Scan(ctx, prefix)
	if err != nil {
		return nil, e.WrapError(ctx, "scan "+prefix, err)
	}
	out := make([]T, 0, len(entries))
	for _, en := range entries {
		var v T
		if err := json.Unmarshal(en.Value, &v); err != nil {
			return nil, e.Wrap("decode "+en.Key, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func sortResponses(rs []domain.Response) {
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}

func sortReplies(rs []domain.Reply) {
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].CreatedAt.Before(rs[j].CreatedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}
