package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoalert/internal/domain"
	"geoalert/internal/events"
	"geoalert/internal/metrics"
	"geoalert/internal/service"
	mock_service "geoalert/internal/service/mocks"
	"geoalert/internal/storage/memory"
	"geoalert/pkg/e"
)

func attackAt(author string, p domain.Point, label string) domain.SubmitReportRequest {
	return domain.SubmitReportRequest{
		AuthorID:      author,
		Text:          "Explosion heard near the bridge",
		Category:      domain.CategoryAttack,
		Origin:        &p,
		LocationLabel: label,
	}
}

func notificationsOfKind(t *testing.T, eng *engine, kind domain.NotificationKind) []domain.Notification {
	t.Helper()
	all, err := eng.dispatcher.Visible(context.Background(), "observer", nil)
	require.NoError(t, err)
	var out []domain.Notification
	for _, n := range all {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func TestDispatcher_TwoCitizensNearby(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	a, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, "Lal Chowk"))
	require.NoError(t, err)
	assert.Equal(t, 0, a.NearbyCount)

	b, err := eng.reports.SubmitReport(ctx, attackAt("citizen-b", pointB, ""))
	require.NoError(t, err)
	assert.Equal(t, 1, b.NearbyCount)

	threats := notificationsOfKind(t, eng, domain.KindThreat)
	require.Len(t, threats, 2)

	// newest first
	assert.Equal(t, b.ID, threats[0].SourceReportID)
	assert.Equal(t, "CITIZEN ALERT: Attack reported in Location", threats[0].Title)
	assert.Equal(t, a.ID, threats[1].SourceReportID)
	assert.Equal(t, "CITIZEN ALERT: Attack reported in Lal Chowk", threats[1].Title)
	assert.Equal(t, "A citizen has reported an attack. Stay alert and follow government instructions. Location: Lal Chowk", threats[1].Message)
	assert.Equal(t, "geo:34.0837,74.7973,10", threats[1].RecipientScope)

	near, err := eng.center.Feed(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	assert.Len(t, near.Items, 2)
	assert.Equal(t, 2, near.Unread)

	far, err := eng.center.Feed(ctx, "villager", ptr(pointFar))
	require.NoError(t, err)
	assert.Empty(t, far.Items)
}

func TestDispatcher_NearbyCountExcludesSamePoint(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	_, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)

	again, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, again.NearbyCount)

	n, err := eng.dispatcher.NearbyCount(ctx, pointB)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = eng.dispatcher.NearbyCount(ctx, domain.Point{Lat: 0, Lng: 181})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinate)
}

func TestDispatcher_ResponseCreatesExactlyOneInfo(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	root, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, "Lal Chowk"))
	require.NoError(t, err)

	resp, err := eng.reports.SubmitResponse(ctx, domain.SubmitResponseRequest{
		ThreadID: root.ID, AuthorID: "gov-1", Text: "Units are on the way",
	})
	require.NoError(t, err)

	infos := notificationsOfKind(t, eng, domain.KindInfo)
	require.Len(t, infos, 1)
	assert.Equal(t, resp.ID, infos[0].SourceResponseID)
	assert.Equal(t, root.ID, infos[0].SourceReportID)
	assert.Equal(t, "Government Response: Lal Chowk", infos[0].Title)
	assert.Equal(t, "Government has responded to the attack report in Lal Chowk: Units are on the way", infos[0].Message)

	// replies never notify
	_, err = eng.reports.SubmitReply(ctx, domain.SubmitReplyRequest{ThreadID: root.ID, AuthorID: "citizen-a", Text: "thanks"})
	require.NoError(t, err)
	assert.Len(t, notificationsOfKind(t, eng, domain.KindInfo), 1)
	assert.Len(t, notificationsOfKind(t, eng, domain.KindThreat), 1)
}

func TestDispatcher_ManualLocationSendsNothing(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	root, err := eng.reports.SubmitReport(ctx, domain.SubmitReportRequest{
		AuthorID: "citizen-a", Text: "Gunfire", Category: domain.CategoryAttack, LocationLabel: "Downtown",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, root.NearbyCount)

	_, err = eng.reports.SubmitResponse(ctx, domain.SubmitResponseRequest{ThreadID: root.ID, AuthorID: "gov", Text: "noted"})
	require.NoError(t, err)

	all, err := eng.dispatcher.Visible(ctx, "anyone", nil)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, 1.0, testutil.ToFloat64(eng.metrics.DispatchDegraded.WithLabelValues("manual_location")))
}

func TestDispatcher_NonAttackReportIsIndexedButNotBroadcast(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	_, err := eng.reports.SubmitReport(ctx, domain.SubmitReportRequest{
		AuthorID: "citizen-a", Text: "Road blocked", Category: domain.CategoryGeneral, Origin: ptr(pointA),
	})
	require.NoError(t, err)

	assert.Empty(t, notificationsOfKind(t, eng, domain.KindThreat))
	n, err := eng.dispatcher.NearbyCount(ctx, pointB)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatcher_MalformedOriginIsDegraded(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ev := domain.Event{
		Type:     domain.EventReportCreated,
		ThreadID: "bad",
		Report: &domain.Report{
			ID: "bad", AuthorID: "c", Text: "x", Category: domain.CategoryAttack,
			Origin: &domain.Point{Lat: 123, Lng: 0},
		},
	}
	eng.dispatcher.Handle(context.Background(), ev)

	assert.Empty(t, notificationsOfKind(t, eng, domain.KindThreat))
	assert.Equal(t, 1.0, testutil.ToFloat64(eng.metrics.DispatchDegraded.WithLabelValues("invalid_origin")))
}

func TestDispatcher_GovernmentAttackNotBroadcast(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	eng.dispatcher.Handle(context.Background(), domain.Event{
		Type:     domain.EventReportCreated,
		ThreadID: "gov-attack",
		Report: &domain.Report{
			ID: "gov-attack", AuthorID: "gov-1", AuthorRole: domain.RoleGovernment,
			Text: "x", Category: domain.CategoryAttack, Origin: ptr(pointA),
		},
	})

	assert.Empty(t, notificationsOfKind(t, eng, domain.KindThreat))
}

func TestDispatcher_RedeliveryDoesNotDuplicate(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	root, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)

	eng.dispatcher.Handle(ctx, domain.Event{Type: domain.EventReportCreated, ThreadID: root.ID, Report: root})
	assert.Len(t, notificationsOfKind(t, eng, domain.KindThreat), 1)
}

func TestDispatcher_ThreadDeletionCleansUp(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	root, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)
	_, err = eng.reports.SubmitResponse(ctx, domain.SubmitResponseRequest{ThreadID: root.ID, AuthorID: "gov", Text: "ok"})
	require.NoError(t, err)
	require.NoError(t, eng.reports.DeleteThread(ctx, root.ID))

	all, err := eng.dispatcher.Visible(ctx, "anyone", nil)
	require.NoError(t, err)
	assert.Empty(t, all)

	n, err := eng.dispatcher.NearbyCount(ctx, pointB)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDispatcher_RebuildFromStore(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()
	_, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)

	fresh := service.NewDispatcher(eng.store, eng.kv, nil, service.DispatcherConfig{RadiusKm: 10}, nil, newTestLogger())
	n, err := fresh.NearbyCount(ctx, pointB)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, fresh.Rebuild(ctx))
	n, err = fresh.NearbyCount(ctx, pointB)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatcher_OutboxReceivesNotifications(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	outbox := mock_service.NewMockNotificationOutbox(ctrl)
	var got domain.Notification
	outbox.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n domain.Notification) error {
			got = n
			return nil
		}).
		Times(1)

	eng := newEngine(t, outbox)
	root, err := eng.reports.SubmitReport(context.Background(), attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)

	assert.Equal(t, domain.KindThreat, got.Kind)
	assert.Equal(t, root.ID, got.SourceReportID)
}

func TestDispatcher_OutboxFailureKeepsNotification(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	outbox := mock_service.NewMockNotificationOutbox(ctrl)
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	eng := newEngine(t, outbox)
	_, err := eng.reports.SubmitReport(context.Background(), attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)

	assert.Len(t, notificationsOfKind(t, eng, domain.KindThreat), 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(eng.metrics.DispatchDegraded.WithLabelValues("outbox")))
}

func TestDispatcher_StoreFailureNeverBlocksWrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// notifications go to a broken store, reports to a healthy one
	broken := mock_service.NewMockRecordStore(ctrl)
	broken.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("unavailable")).AnyTimes()

	logger := newTestLogger()
	m := metrics.New()
	pub := &recordingPublisher{}
	store := service.NewAlertStore(memory.NewKV(), pub, m, logger)
	d := service.NewDispatcher(store, broken, nil, service.DispatcherConfig{RadiusKm: 10, Timeout: time.Second}, m, logger)
	pub.handler = d.Handle

	r := &domain.Report{AuthorID: "c", Text: "x", Category: domain.CategoryAttack, Origin: ptr(pointA)}
	_, err := store.AppendReport(context.Background(), r)
	require.NoError(t, err)

	_, err = store.GetReport(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchDegraded.WithLabelValues("store")))
}

func TestDispatcher_OverEventBus(t *testing.T) {
	t.Parallel()

	logger := newTestLogger()
	kv := memory.NewKV()
	bus := events.NewBus(logger)
	store := service.NewAlertStore(kv, bus, nil, logger)
	d := service.NewDispatcher(store, kv, nil, service.DispatcherConfig{RadiusKm: 10, Timeout: time.Second}, nil, logger)
	bus.Subscribe("dispatcher", d.Handle)

	ctx := context.Background()
	reports := service.NewReportService(store, store, d, 200*time.Millisecond, logger)
	root, err := reports.SubmitReport(ctx, attackAt("citizen-a", pointA, "Lal Chowk"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		n, err := d.NearbyCount(ctx, pointB)
		return err == nil && n == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Close(ctx))

	all, err := d.Visible(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, strings.HasSuffix(all[0].ID, root.ID))
}
