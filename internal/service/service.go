package service

import (
	"context"

	"geoalert/internal/domain"
	"geoalert/internal/storage"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// RecordStore is the key-value substrate the alert store and the dispatcher
// persist into. Implemented by the memory, redis and postgres backends.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Scan(ctx context.Context, prefix string) ([]storage.Entry, error)
}

// ReadStateRepository keeps the set of notification ids each recipient has
// acknowledged.
type ReadStateRepository interface {
	Add(ctx context.Context, recipientID string, notificationIDs ...string) error
	Has(ctx context.Context, recipientID, notificationID string) (bool, error)
	Members(ctx context.Context, recipientID string) ([]string, error)
	Clear(ctx context.Context, recipientID string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

// NotificationOutbox receives every created notification for push delivery.
type NotificationOutbox interface {
	Enqueue(ctx context.Context, n domain.Notification) error
}

// ThreadReader is the read side of the alert store.
type ThreadReader interface {
	GetReport(ctx context.Context, id string) (*domain.Report, error)
	GetThread(ctx context.Context, threadID string) (*domain.Thread, error)
	ListReportsByCategory(ctx context.Context, category domain.Category) ([]domain.Report, error)
	ListReportsByAuthor(ctx context.Context, authorID string) ([]domain.Report, error)
	ListThreads(ctx context.Context) ([]domain.Thread, error)
}

// AlertWriter is the write side of the alert store.
type AlertWriter interface {
	AppendReport(ctx context.Context, r *domain.Report) (string, error)
	AppendResponse(ctx context.Context, r *domain.Response) (string, error)
	AppendReply(ctx context.Context, r *domain.Reply) (string, error)
	DeleteThread(ctx context.Context, threadID string) error
}

type NearbyCounter interface {
	NearbyCount(ctx context.Context, origin domain.Point) (int, error)
}

// Citizen and government use-cases.
type ReportService interface {
	SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error)
	SubmitResponse(ctx context.Context, req domain.SubmitResponseRequest) (*domain.Response, error)
	SubmitReply(ctx context.Context, req domain.SubmitReplyRequest) (*domain.Reply, error)
	GetThread(ctx context.Context, threadID string) (*domain.Thread, error)
	ListReports(ctx context.Context, category domain.Category) ([]domain.Report, error)
	DeleteThread(ctx context.Context, threadID string) error
}

type ConversationService interface {
	Assemble(ctx context.Context, threadID string) ([]domain.Message, error)
	ListConversations(ctx context.Context, authorID string) ([]domain.Conversation, error)
}

// NotificationService is the recipient-facing side of dispatch and read state.
type NotificationService interface {
	Feed(ctx context.Context, recipientID string, location *domain.Point) (*domain.Feed, error)
	MarkRead(ctx context.Context, recipientID, notificationID string) error
	MarkAllRead(ctx context.Context, recipientID string, location *domain.Point) error
	Dismiss(ctx context.Context, recipientID, notificationID string) error
	ClearAll(ctx context.Context, recipientID string) error
}

// Government dashboard counters.
type StatsService interface {
	GetStats(ctx context.Context) (*domain.AlertStats, error)
}

type Service struct {
	ReportService       ReportService
	ConversationService ConversationService
	NotificationService NotificationService
	StatsService        StatsService
}

func NewService(
	reportService ReportService,
	conversationService ConversationService,
	notificationService NotificationService,
	statsService StatsService,
) *Service {
	return &Service{
		ReportService:       reportService,
		ConversationService: conversationService,
		NotificationService: notificationService,
		StatsService:        statsService,
	}
}
