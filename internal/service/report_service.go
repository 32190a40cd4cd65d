package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoalert/internal/domain"
	"geoalert/pkg/e"
	"geoalert/pkg/validator"
)

type reportService struct {
	writer        AlertWriter
	reader        ThreadReader
	nearby        NearbyCounter
	nearbyTimeout time.Duration
	logger        *slog.Logger
}

func NewReportService(
	writer AlertWriter,
	reader ThreadReader,
	nearby NearbyCounter,
	nearbyTimeout time.Duration,
	logger *slog.Logger,
) ReportService {
	if nearbyTimeout <= 0 {
		nearbyTimeout = 500 * time.Millisecond
	}
	return &reportService{
		writer:        writer,
		reader:        reader,
		nearby:        nearby,
		nearbyTimeout: nearbyTimeout,
		logger:        logger,
	}
}

func validateRequest(req any) error {
	if err := validator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %v", e.ErrValidation, err)
	}
	return nil
}

// SubmitReport attaches the nearby count and stores the report. The count is
// best effort: a slow or failing lookup stores zero instead of failing the
// write.
func (s *reportService) SubmitReport(ctx context.Context, req domain.SubmitReportRequest) (*domain.Report, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	report := &domain.Report{
		AuthorID:      req.AuthorID,
		AuthorRole:    req.AuthorRole,
		Text:          req.Text,
		Category:      req.Category,
		LocationLabel: req.LocationLabel,
	}
	if req.Origin != nil {
		if err := req.Origin.Validate(); err != nil {
			return nil, err
		}
		origin := *req.Origin
		report.Origin = &origin
		report.NearbyCount = s.nearbyCount(ctx, origin)
	}

	if _, err := s.writer.AppendReport(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) nearbyCount(ctx context.Context, origin domain.Point) int {
	ctx, cancel := context.WithTimeout(ctx, s.nearbyTimeout)
	defer cancel()

	n, err := s.nearby.NearbyCount(ctx, origin)
	if err != nil {
		s.logger.Warn("nearby count unavailable, storing 0",
			slog.String("origin", origin.String()),
			slog.Any("error", err),
		)
		return 0
	}
	return n
}

func (s *reportService) SubmitResponse(ctx context.Context, req domain.SubmitResponseRequest) (*domain.Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	resp := &domain.Response{ThreadID: req.ThreadID, AuthorID: req.AuthorID, Text: req.Text}
	if _, err := s.writer.AppendResponse(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *reportService) SubmitReply(ctx context.Context, req domain.SubmitReplyRequest) (*domain.Reply, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	reply := &domain.Reply{ThreadID: req.ThreadID, AuthorID: req.AuthorID, Text: req.Text}
	if _, err := s.writer.AppendReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *reportService) GetThread(ctx context.Context, threadID string) (*domain.Thread, error) {
	return s.reader.GetThread(ctx, threadID)
}

func (s *reportService) ListReports(ctx context.Context, category domain.Category) ([]domain.Report, error) {
	if category != "" && !category.Valid() {
		return nil, e.Validation("category", fmt.Sprintf("unknown category %q", category))
	}
	return s.reader.ListReportsByCategory(ctx, category)
}

func (s *reportService) DeleteThread(ctx context.Context, threadID string) error {
	return s.writer.DeleteThread(ctx, threadID)
}
