package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stockcast/internal/models"
)

func TestHistoryService_List_PassesFilterThrough(t *testing.T) {
	repo := &fakeQueryRepo{appended: []models.ForecastQuery{
		{ID: "q1", Ticker: "AAPL", Status: models.QueryStatusOK},
	}}
	svc := NewHistoryService(repo)

	out, err := svc.List(context.Background(), QueryFilter{Ticker: "AAPL"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 || out[0].ID != "q1" {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestHistoryService_List_RejectsInvertedRange(t *testing.T) {
	svc := NewHistoryService(&fakeQueryRepo{})

	now := time.Now()
	_, err := svc.List(context.Background(), QueryFilter{From: now, To: now.Add(-time.Hour)})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange, got %v", err)
	}
}
