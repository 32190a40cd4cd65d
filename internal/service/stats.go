package service

import (
	"context"

	"geoalert/internal/domain"
)

type statsService struct {
	reader ThreadReader
}

func NewStatsService(reader ThreadReader) StatsService {
	return &statsService{reader: reader}
}

// GetStats counts reports per category and splits attack threads into
// answered and unanswered.
func (s *statsService) GetStats(ctx context.Context) (*domain.AlertStats, error) {
	threads, err := s.reader.ListThreads(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.AlertStats{
		ReportsByCategory: map[domain.Category]int{
			domain.CategoryAttack:      0,
			domain.CategoryGeneral:     0,
			domain.CategoryInstruction: 0,
		},
	}
	for i := range threads {
		th := &threads[i]
		stats.ReportsByCategory[th.Report.Category]++
		if th.Report.Category != domain.CategoryAttack {
			continue
		}
		if th.Answered() {
			stats.AnsweredThreads++
		} else {
			stats.UnansweredThreads++
		}
	}
	return stats, nil
}
