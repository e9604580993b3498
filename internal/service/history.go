package service

import (
	"context"
	"errors"
	"time"

	"stockcast/internal/models"
	"stockcast/internal/repository"
)

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// QueryFilter narrows the audit-log listing. Zero fields mean "no filter".
type QueryFilter struct {
	From   time.Time
	To     time.Time
	Ticker string
}

type HistoryService struct {
	queries repository.QueryRepo
}

func NewHistoryService(queries repository.QueryRepo) *HistoryService {
	return &HistoryService{queries: queries}
}

// List returns audit entries matching the filter in chronological order.
func (s *HistoryService) List(ctx context.Context, f QueryFilter) ([]models.ForecastQuery, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, errInvalidTimeRange
	}
	return s.queries.List(ctx, f.From, f.To, f.Ticker)
}
