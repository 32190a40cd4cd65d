package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"geoalert/internal/api/handlers/http/public"
	mock_public "geoalert/internal/api/handlers/http/public/mocks"
	"geoalert/internal/domain"
	"geoalert/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func withParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type mocks struct {
	reports       *mock_public.MockCitizenReports
	conversations *mock_public.MockConversations
	notifications *mock_public.MockNotifications
}

func newHandler(t *testing.T) (*public.Handler, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		reports:       mock_public.NewMockCitizenReports(ctrl),
		conversations: mock_public.NewMockConversations(ctrl),
		notifications: mock_public.NewMockNotifications(ctrl),
	}
	return public.NewHandler(newTestLogger(), m.reports, m.conversations, m.notifications), m
}

func TestReportCreate_OK(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)

	wantReq := domain.SubmitReportRequest{
		AuthorID:      "citizen-1",
		AuthorRole:    domain.RoleCitizen,
		Text:          "explosion near the bridge",
		Category:      domain.CategoryAttack,
		Origin:        &domain.Point{Lat: 34.0837, Lng: 74.7973},
		LocationLabel: "Zero Bridge",
	}
	m.reports.EXPECT().
		SubmitReport(gomock.Any(), wantReq).
		Return(&domain.Report{ID: "r1", Category: domain.CategoryAttack, NearbyCount: 2}, nil).
		Times(1)

	body := `{"author_id":"citizen-1","author_role":"government","text":"explosion near the bridge","category":"attack","origin":{"lat":34.0837,"lng":74.7973},"location_label":"Zero Bridge"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.ReportCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Report](t, rr)
	if got.NearbyCount != 2 {
		t.Fatalf("nearby_count = %d, want 2", got.NearbyCount)
	}
}

func TestReportCreate_Invalid_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	cases := map[string]string{
		"bad json":         `{"author_id":`,
		"unknown field":    `{"author_id":"a","text":"t","category":"general","mood":"calm"}`,
		"missing text":     `{"author_id":"a","category":"general"}`,
		"unknown category": `{"author_id":"a","text":"t","category":"gossip"}`,
		"bad latitude":     `{"author_id":"a","text":"t","category":"attack","origin":{"lat":91,"lng":0}}`,
	}
	for name, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		h.ReportCreate(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d got %d", name, http.StatusBadRequest, rr.Code)
		}
	}
}

func TestReplyCreate_UsesPathThread(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.reports.EXPECT().
		SubmitReply(gomock.Any(), domain.SubmitReplyRequest{ThreadID: "t1", AuthorID: "citizen-1", Text: "thank you"}).
		Return(&domain.Reply{ID: "rep1", ThreadID: "t1"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/threads/t1/replies", bytes.NewBufferString(`{"author_id":"citizen-1","text":"thank you"}`))
	rr := httptest.NewRecorder()
	h.ReplyCreate(rr, withParam(req, "id", "t1"))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestConversationGet_NotFound_404(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.conversations.EXPECT().Assemble(gomock.Any(), "nope").Return(nil, e.ErrThreadNotFound).Times(1)

	rr := httptest.NewRecorder()
	h.ConversationGet(rr, withParam(httptest.NewRequest(http.MethodGet, "/api/v1/threads/nope/conversation", nil), "id", "nope"))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestConversationList_OK(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.conversations.EXPECT().
		ListConversations(gomock.Any(), "citizen-1").
		Return([]domain.Conversation{{Report: domain.Report{ID: "r1"}, ResponseCount: 1}}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.ConversationList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/conversations?author_id=citizen-1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[struct {
		Conversations []domain.Conversation `json:"conversations"`
		Total         int                   `json:"total"`
	}](t, rr)
	if got.Total != 1 || got.Conversations[0].Report.ID != "r1" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestNotificationFeed_WithLocation(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.notifications.EXPECT().
		Feed(gomock.Any(), "citizen-2", &domain.Point{Lat: 34.0845, Lng: 74.7985}).
		Return(&domain.Feed{Items: []domain.FeedItem{{Notification: domain.Notification{ID: "alert_r1"}}}, Unread: 1}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.NotificationFeed(rr, httptest.NewRequest(http.MethodGet, "/api/v1/notifications?recipient_id=citizen-2&lat=34.0845&lng=74.7985", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Feed](t, rr)
	if got.Unread != 1 || len(got.Items) != 1 {
		t.Fatalf("unexpected feed: %+v", got)
	}
}

func TestNotificationFeed_WithoutLocation(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.notifications.EXPECT().
		Feed(gomock.Any(), "citizen-2", (*domain.Point)(nil)).
		Return(&domain.Feed{}, nil).
		Times(1)

	rr := httptest.NewRecorder()
	h.NotificationFeed(rr, httptest.NewRequest(http.MethodGet, "/api/v1/notifications?recipient_id=citizen-2", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestNotificationFeed_BadQuery_400(t *testing.T) {
	t.Parallel()

	h, _ := newHandler(t)

	for _, q := range []string{
		"",
		"?recipient_id=c&lat=34.1",
		"?recipient_id=c&lat=abc&lng=1",
		"?recipient_id=c&lat=95&lng=1",
	} {
		rr := httptest.NewRecorder()
		h.NotificationFeed(rr, httptest.NewRequest(http.MethodGet, "/api/v1/notifications"+q, nil))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("query %q: expected %d got %d", q, http.StatusBadRequest, rr.Code)
		}
	}
}

func TestNotificationRead_And_Dismiss(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.notifications.EXPECT().MarkRead(gomock.Any(), "citizen-2", "alert_r1").Return(nil).Times(1)
	m.notifications.EXPECT().Dismiss(gomock.Any(), "citizen-2", "alert_r1").Return(e.ErrNotFound).Times(1)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/alert_r1/read", bytes.NewBufferString(`{"recipient_id":"citizen-2"}`))
	h.NotificationRead(rr, withParam(req, "id", "alert_r1"))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("read: expected %d got %d", http.StatusNoContent, rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/notifications/alert_r1/dismiss", bytes.NewBufferString(`{"recipient_id":"citizen-2"}`))
	h.NotificationDismiss(rr, withParam(req, "id", "alert_r1"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("dismiss: expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestNotificationReadAll_PassesLocation(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.notifications.EXPECT().
		MarkAllRead(gomock.Any(), "citizen-2", &domain.Point{Lat: 34.0845, Lng: 74.7985}).
		Return(nil).
		Times(1)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all",
		bytes.NewBufferString(`{"recipient_id":"citizen-2","lat":34.0845,"lng":74.7985}`))
	h.NotificationReadAll(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/notifications/read-all", bytes.NewBufferString(`{"recipient_id":"citizen-2","lat":34.0845}`))
	h.NotificationReadAll(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("half location: expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestReadStateClear_NoContent(t *testing.T) {
	t.Parallel()

	h, m := newHandler(t)
	m.notifications.EXPECT().ClearAll(gomock.Any(), "citizen-2").Return(nil).Times(1)

	rr := httptest.NewRecorder()
	h.ReadStateClear(rr, withParam(httptest.NewRequest(http.MethodDelete, "/api/v1/readstate/citizen-2", nil), "recipient_id", "citizen-2"))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d", http.StatusNoContent, rr.Code)
	}
}
