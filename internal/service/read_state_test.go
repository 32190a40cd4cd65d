package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoalert/internal/domain"
	"geoalert/internal/service"
	mock_service "geoalert/internal/service/mocks"
	"geoalert/internal/storage/memory"
	"geoalert/pkg/e"
)

func notifications(ids ...string) []domain.Notification {
	out := make([]domain.Notification, len(ids))
	for i, id := range ids {
		out[i] = domain.Notification{ID: id}
	}
	return out
}

func TestReadStateTracker_UnreadArithmetic(t *testing.T) {
	t.Parallel()

	tr := service.NewReadStateTracker(memory.NewReadState(), nil, newTestLogger())
	ctx := context.Background()
	list := notifications("n1", "n2", "n3", "n4")

	unread, err := tr.UnreadCount(ctx, "alice", list)
	require.NoError(t, err)
	assert.Equal(t, 4, unread)

	require.NoError(t, tr.MarkRead(ctx, "alice", "n2"))
	require.NoError(t, tr.MarkRead(ctx, "alice", "n2"))
	require.NoError(t, tr.MarkRead(ctx, "alice", "n4"))
	// a mark for something outside the list does not count
	require.NoError(t, tr.MarkRead(ctx, "alice", "elsewhere"))

	unread, err = tr.UnreadCount(ctx, "alice", list)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	ok, err := tr.IsRead(ctx, "alice", "n2")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = tr.IsRead(ctx, "bob", "n2")
	require.NoError(t, err)
	assert.False(t, ok, "read marks are per recipient")

	require.NoError(t, tr.ClearAll(ctx, "alice"))
	unread, err = tr.UnreadCount(ctx, "alice", list)
	require.NoError(t, err)
	assert.Equal(t, 4, unread)

	require.NoError(t, tr.MarkAllRead(ctx, "alice", list))
	unread, err = tr.UnreadCount(ctx, "alice", list)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

func TestReadStateTracker_RequiresIDs(t *testing.T) {
	t.Parallel()

	tr := service.NewReadStateTracker(memory.NewReadState(), nil, newTestLogger())
	ctx := context.Background()

	assert.ErrorIs(t, tr.MarkRead(ctx, "", "n1"), e.ErrValidation)
	assert.ErrorIs(t, tr.MarkRead(ctx, "alice", ""), e.ErrValidation)
	assert.ErrorIs(t, tr.ClearAll(ctx, " "), e.ErrValidation)
	_, err := tr.UnreadCount(ctx, "", nil)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestReadStateTracker_RepositoryErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReadStateRepository(ctrl)
	repo.EXPECT().Add(gomock.Any(), "alice", "n1").Return(errors.New("conn reset")).Times(1)
	repo.EXPECT().Members(gomock.Any(), "alice").Return(nil, context.DeadlineExceeded).Times(1)

	tr := service.NewReadStateTracker(repo, nil, newTestLogger())

	err := tr.MarkRead(context.Background(), "alice", "n1")
	assert.ErrorIs(t, err, e.ErrInternal)

	_, err = tr.UnreadCount(context.Background(), "alice", notifications("n1"))
	assert.ErrorIs(t, err, e.ErrDeadline)
}

func TestReadStateTracker_MarkAllReadSingleWrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockReadStateRepository(ctrl)
	repo.EXPECT().Add(gomock.Any(), "alice", "n1", "n2", "n3").Return(nil).Times(1)

	tr := service.NewReadStateTracker(repo, nil, newTestLogger())
	require.NoError(t, tr.MarkAllRead(context.Background(), "alice", notifications("n1", "n2", "n3")))
	require.NoError(t, tr.MarkAllRead(context.Background(), "alice", nil))
}

func TestNotificationCenter_FeedAndAcknowledge(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	a, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, "Lal Chowk"))
	require.NoError(t, err)
	_, err = eng.reports.SubmitResponse(ctx, domain.SubmitResponseRequest{ThreadID: a.ID, AuthorID: "gov", Text: "on it"})
	require.NoError(t, err)

	feed, err := eng.center.Feed(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, 2, feed.Unread)
	assert.Equal(t, domain.KindInfo, feed.Items[0].Kind, "newest first")

	require.NoError(t, eng.center.MarkRead(ctx, "citizen-b", feed.Items[1].ID))
	feed, err = eng.center.Feed(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	assert.Equal(t, 1, feed.Unread)
	assert.True(t, feed.Items[1].Read)

	err = eng.center.MarkRead(ctx, "citizen-b", "missing")
	assert.ErrorIs(t, err, e.ErrNotFound)

	require.NoError(t, eng.center.MarkAllRead(ctx, "citizen-b", ptr(pointB)))
	feed, err = eng.center.Feed(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	assert.Equal(t, 0, feed.Unread)

	require.NoError(t, eng.center.ClearAll(ctx, "citizen-b"))
	feed, err = eng.center.Feed(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	assert.Equal(t, 2, feed.Unread)
}

// Dismissal deletes the shared notification, so it disappears for everybody.
func TestNotificationCenter_DismissRemovesForEveryone(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	_, err := eng.reports.SubmitReport(ctx, attackAt("citizen-a", pointA, ""))
	require.NoError(t, err)

	feedB, err := eng.center.Feed(ctx, "citizen-b", ptr(pointB))
	require.NoError(t, err)
	require.Len(t, feedB.Items, 1)
	id := feedB.Items[0].ID

	require.NoError(t, eng.center.Dismiss(ctx, "citizen-b", id))

	for _, who := range []string{"citizen-a", "citizen-b", "citizen-c"} {
		feed, err := eng.center.Feed(ctx, who, ptr(pointA))
		require.NoError(t, err)
		assert.Empty(t, feed.Items, who)
	}

	read, err := eng.tracker.IsRead(ctx, "citizen-b", id)
	require.NoError(t, err)
	assert.True(t, read)

	// already gone
	assert.ErrorIs(t, eng.center.Dismiss(ctx, "citizen-b", id), e.ErrNotFound)
}

func TestNotificationCenter_DismissUnknownID(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	ctx := context.Background()

	err := eng.center.Dismiss(ctx, "alice", "no-such-notification")
	assert.ErrorIs(t, err, e.ErrNotFound)

	read, err := eng.tracker.IsRead(ctx, "alice", "no-such-notification")
	require.NoError(t, err)
	assert.False(t, read)
}

func TestNotificationCenter_FeedRejectsBadLocation(t *testing.T) {
	t.Parallel()

	eng := newEngine(t, nil)
	_, err := eng.center.Feed(context.Background(), "alice", &domain.Point{Lat: -100, Lng: 0})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinate)
}
