package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"geoalert/internal/domain"
	"geoalert/internal/geo"
	"geoalert/internal/metrics"
	"geoalert/pkg/e"
)

const (
	notificationPrefix   = "notification:"
	defaultLocationLabel = "Location"
)

func notificationKey(id string) string { return notificationPrefix + id }

// Notification ids derive from their source record, so a redelivered event
// overwrites instead of duplicating.
func threatNotificationID(reportID string) string { return "alert_" + reportID }

func responseNotificationID(responseID string) string { return "response_" + responseID }

type DispatcherConfig struct {
	RadiusKm float64
	Timeout  time.Duration
}

// Dispatcher turns store events into geo-scoped notifications and answers
// proximity queries from an index of report origins.
type Dispatcher struct {
	store   ThreadReader
	kv      RecordStore
	outbox  NotificationOutbox
	index   *geo.Index
	cfg     DispatcherConfig
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewDispatcher builds a dispatcher. outbox may be nil when push delivery is
// disabled.
func NewDispatcher(
	store ThreadReader,
	kv RecordStore,
	outbox NotificationOutbox,
	cfg DispatcherConfig,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	if cfg.RadiusKm <= 0 {
		cfg.RadiusKm = geo.DefaultRadiusKm
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Dispatcher{
		store:   store,
		kv:      kv,
		outbox:  outbox,
		index:   geo.NewIndex(),
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source for created notifications.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

func (d *Dispatcher) RadiusKm() float64 { return d.cfg.RadiusKm }

// Rebuild reloads every located report into the index. It is the pull side
// of eventual consistency: whatever the event stream missed is picked up here.
func (d *Dispatcher) Rebuild(ctx context.Context) error {
	reports, err := d.store.ListReportsByCategory(ctx, "")
	if err != nil {
		return e.Wrap("dispatcher.Rebuild", err)
	}
	cands := make([]geo.Candidate, 0, len(reports))
	for _, r := range reports {
		if r.Origin != nil {
			cands = append(cands, geo.Candidate{ID: r.ID, Point: *r.Origin})
		}
	}
	d.index.Reset(cands)
	d.metrics.SetIndexed(d.index.Len())
	d.logger.Debug("dispatcher index rebuilt", slog.Int("origins", d.index.Len()))
	return nil
}

// NearbyCount is the number of earlier located reports within the dispatch
// radius of origin, excluding those at distance zero.
func (d *Dispatcher) NearbyCount(ctx context.Context, origin domain.Point) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, e.WrapError(ctx, "dispatcher.NearbyCount", err)
	}
	near, err := d.index.Within(origin, d.cfg.RadiusKm)
	if err != nil {
		return 0, err
	}
	return len(near), nil
}

// Handle is the bus subscriber. It never returns an error: every failure
// ends up in the log and the degraded counter.
func (d *Dispatcher) Handle(ctx context.Context, ev domain.Event) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	var err error
	switch ev.Type {
	case domain.EventReportCreated:
		err = d.onReport(ctx, ev.Report)
	case domain.EventResponseCreated:
		err = d.onResponse(ctx, ev)
	case domain.EventThreadDeleted:
		err = d.onThreadDeleted(ctx, ev.ThreadID)
	case domain.EventReplyCreated:
		return
	}
	d.metrics.ObserveDispatch(time.Since(start))

	if err != nil {
		reason := "store"
		switch {
		case errors.Is(err, e.ErrInvalidCoordinate):
			reason = "invalid_origin"
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, e.ErrDeadline):
			reason = "timeout"
		}
		d.metrics.Degraded(reason)
		d.logger.Warn("dispatch degraded",
			slog.String("event", string(ev.Type)),
			slog.String("thread_id", ev.ThreadID),
			slog.String("reason", reason),
			slog.Any("error", fmt.Errorf("%w: %w", e.ErrDispatchDegraded, err)),
		)
	}
}

func (d *Dispatcher) onReport(ctx context.Context, r *domain.Report) error {
	if r == nil {
		return nil
	}
	if r.Origin == nil {
		if r.Category == domain.CategoryAttack {
			d.metrics.Degraded("manual_location")
			d.logger.Info("attack report without coordinates, no broadcast", slog.String("thread_id", r.ID))
		}
		return nil
	}
	if err := d.index.Put(r.ID, *r.Origin); err != nil {
		return err
	}
	d.metrics.SetIndexed(d.index.Len())

	if r.Category != domain.CategoryAttack || r.AuthorRole == domain.RoleGovernment {
		return nil
	}
	label := labelOr(r.LocationLabel)
	n := domain.Notification{
		ID:             threatNotificationID(r.ID),
		SourceReportID: r.ID,
		RecipientScope: domain.GeoScope{Center: *r.Origin, RadiusKm: d.cfg.RadiusKm}.String(),
		Title:          "CITIZEN ALERT: Attack reported in " + label,
		Message:        "A citizen has reported an attack. Stay alert and follow government instructions. Location: " + label,
		Kind:           domain.KindThreat,
		CreatedAt:      d.now(),
	}
	return d.emit(ctx, n)
}

func (d *Dispatcher) onResponse(ctx context.Context, ev domain.Event) error {
	resp := ev.Response
	if resp == nil {
		return nil
	}
	root := ev.Report
	if root == nil {
		var err error
		if root, err = d.store.GetReport(ctx, resp.ThreadID); err != nil {
			return err
		}
	}
	origin := resp.Origin
	if origin == nil {
		origin = root.Origin
	}
	if origin == nil {
		return nil
	}
	if err := origin.Validate(); err != nil {
		return err
	}

	label := resp.LocationLabel
	if label == "" {
		label = root.LocationLabel
	}
	label = labelOr(label)
	n := domain.Notification{
		ID:               responseNotificationID(resp.ID),
		SourceReportID:   resp.ThreadID,
		SourceResponseID: resp.ID,
		RecipientScope:   domain.GeoScope{Center: *origin, RadiusKm: d.cfg.RadiusKm}.String(),
		Title:            "Government Response: " + label,
		Message:          fmt.Sprintf("Government has responded to the attack report in %s: %s", label, resp.Text),
		Kind:             domain.KindInfo,
		CreatedAt:        d.now(),
	}
	return d.emit(ctx, n)
}

// onThreadDeleted drops the origin and every notification the thread produced.
func (d *Dispatcher) onThreadDeleted(ctx context.Context, threadID string) error {
	d.index.Remove(threadID)
	d.metrics.SetIndexed(d.index.Len())

	all, err := d.list(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0)
	for _, n := range all {
		if n.SourceReportID == threadID {
			keys = append(keys, notificationKey(n.ID))
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return e.WrapError(ctx, "dispatcher.onThreadDeleted", d.kv.Delete(ctx, keys...))
}

func (d *Dispatcher) emit(ctx context.Context, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	if err := d.kv.Set(ctx, notificationKey(n.ID), b); err != nil {
		return e.WrapError(ctx, "dispatcher.emit", err)
	}
	d.metrics.NotificationCreated(string(n.Kind))
	d.logger.Info("notification created",
		slog.String("notification_id", n.ID),
		slog.String("kind", string(n.Kind)),
		slog.String("scope", n.RecipientScope),
	)

	if d.outbox != nil {
		if err := d.outbox.Enqueue(ctx, n); err != nil {
			d.metrics.Degraded("outbox")
			d.logger.Error("enqueue notification failed", slog.String("notification_id", n.ID), slog.Any("error", err))
		}
	}
	return nil
}

func (d *Dispatcher) Get(ctx context.Context, id string) (*domain.Notification, error) {
	raw, err := d.kv.Get(ctx, notificationKey(id))
	if err != nil {
		return nil, e.WrapError(ctx, "dispatcher.Get", err)
	}
	var n domain.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, e.Wrap("decode notification "+id, err)
	}
	return &n, nil
}

// Delete removes a notification for every recipient.
func (d *Dispatcher) Delete(ctx context.Context, id string) error {
	return e.WrapError(ctx, "dispatcher.Delete", d.kv.Delete(ctx, notificationKey(id)))
}

// Visible returns the notifications recipientID should see, newest first.
// Geo-scoped notifications are filtered by location when one is known and
// shown unfiltered otherwise.
func (d *Dispatcher) Visible(ctx context.Context, recipientID string, location *domain.Point) ([]domain.Notification, error) {
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}
	all, err := d.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if visibleTo(n, recipientID, location) {
			out = append(out, n)
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

func (d *Dispatcher) list(ctx context.Context) ([]domain.Notification, error) {
	return scanDecode[domain.Notification](ctx, d.kv, notificationPrefix)
}

func visibleTo(n domain.Notification, recipientID string, location *domain.Point) bool {
	if user, ok := n.UserOf(); ok {
		return user == recipientID
	}
	scope, err := domain.ParseGeoScope(n.RecipientScope)
	if err != nil {
		return false
	}
	if location == nil {
		return true
	}
	return geo.DistanceKm(scope.Center, *location) <= scope.RadiusKm
}

func labelOr(label string) string {
	if label == "" {
		return defaultLocationLabel
	}
	return label
}
