package service

import (
	"context"
	"math"
	"time"

	"taskboard/internal/dates"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type StatsService struct {
	tasks *repository.TaskRepository
}

func NewStatsService(tasks *repository.TaskRepository) *StatsService {
	return &StatsService{tasks: tasks}
}

// Overview aggregates the user's tasks as of now: totals, per-status
// counts, overdue/upcoming windows and the completion percentage.
func (s *StatsService) Overview(ctx context.Context, userID string, now time.Time) (*domain.TaskStats, error) {
	dayStart := dates.StartOfDay(now)
	horizonEnd := dates.EndOfDay(now.AddDate(0, 0, dates.DefaultHorizonDays))

	st, err := s.tasks.CountStats(ctx, userID, dayStart, horizonEnd)
	if err != nil {
		return nil, err
	}
	st.CompletionRate = completionRate(st.ByStatus.Done, st.Total)
	return st, nil
}

// completionRate is the done percentage rounded to the nearest integer,
// defined as 0 for an empty collection.
func completionRate(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}
