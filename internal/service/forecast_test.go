package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"stockcast/internal/mlclient"
	"stockcast/internal/models"
)

// fakeUpstream scripts per-ticker outcomes for the ML client interface.
type fakeUpstream struct {
	mu        sync.Mutex
	rawByTick map[string]string
	errByTick map[string]error
	calls     []string

	analysisRaw string
	analysisErr error
}

func (f *fakeUpstream) Forecast(ctx context.Context, req models.ForecastRequest) (*mlclient.ForecastResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req.Ticker)
	f.mu.Unlock()

	if err := f.errByTick[req.Ticker]; err != nil {
		return nil, err
	}
	raw, ok := f.rawByTick[req.Ticker]
	if !ok {
		return nil, fmt.Errorf("unscripted ticker %q", req.Ticker)
	}
	return &mlclient.ForecastResult{Raw: json.RawMessage(raw)}, nil
}

func (f *fakeUpstream) Analysis(ctx context.Context, ticker string) (*mlclient.AnalysisResult, error) {
	if f.analysisErr != nil {
		return nil, f.analysisErr
	}
	return &mlclient.AnalysisResult{Raw: json.RawMessage(f.analysisRaw)}, nil
}

// fakeQueryRepo records appended audit entries in memory.
type fakeQueryRepo struct {
	mu        sync.Mutex
	appended  []models.ForecastQuery
	appendErr error
}

func (f *fakeQueryRepo) Append(ctx context.Context, q models.ForecastQuery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, q)
	return f.appendErr
}

func (f *fakeQueryRepo) List(ctx context.Context, from, to time.Time, ticker string) ([]models.ForecastQuery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ForecastQuery(nil), f.appended...), nil
}

func TestForecastService_Forecast_ReturnsRawAndRecordsAudit(t *testing.T) {
	up := &fakeUpstream{rawByTick: map[string]string{"AAPL": `{"ticker":"AAPL","predictions":{"arima":150.2}}`}}
	repo := &fakeQueryRepo{}
	svc := NewForecastService(up, repo, nil)

	raw, err := svc.Forecast(context.Background(), "alice", models.ForecastRequest{Ticker: "AAPL", TargetDate: "2024-01-15"})
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if string(raw) != up.rawByTick["AAPL"] {
		t.Fatalf("raw body altered: %s", raw)
	}

	if len(repo.appended) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(repo.appended))
	}
	q := repo.appended[0]
	if q.Username != "alice" || q.Ticker != "AAPL" || q.TargetDate != "2024-01-15" || q.Status != models.QueryStatusOK {
		t.Fatalf("unexpected audit entry: %+v", q)
	}
	if q.ID == "" || q.OccurredAt.IsZero() {
		t.Fatalf("audit entry missing id/timestamp: %+v", q)
	}
}

func TestForecastService_Forecast_UpstreamErrorIsPropagatedAndAudited(t *testing.T) {
	up := &fakeUpstream{errByTick: map[string]error{"AAPL": mlclient.ErrUnavailable}}
	repo := &fakeQueryRepo{}
	svc := NewForecastService(up, repo, nil)

	_, err := svc.Forecast(context.Background(), "alice", models.ForecastRequest{Ticker: "AAPL", TargetDate: "2024-01-15"})
	if !errors.Is(err, mlclient.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(repo.appended) != 1 || repo.appended[0].Status != models.QueryStatusError {
		t.Fatalf("expected one ERROR audit entry, got %+v", repo.appended)
	}
}

func TestForecastService_Forecast_AuditFailureDoesNotFailResponse(t *testing.T) {
	up := &fakeUpstream{rawByTick: map[string]string{"AAPL": `{}`}}
	repo := &fakeQueryRepo{appendErr: errors.New("disk full")}
	svc := NewForecastService(up, repo, nil)

	raw, err := svc.Forecast(context.Background(), "alice", models.ForecastRequest{Ticker: "AAPL", TargetDate: "2024-01-15"})
	if err != nil || string(raw) != `{}` {
		t.Fatalf("audit failure leaked into response: raw=%s err=%v", raw, err)
	}
}

func TestForecastService_Analysis_ReturnsRaw(t *testing.T) {
	up := &fakeUpstream{analysisRaw: `{"ticker":"AAPL","data":[]}`}
	repo := &fakeQueryRepo{}
	svc := NewForecastService(up, repo, nil)

	raw, err := svc.Analysis(context.Background(), "alice", "AAPL")
	if err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	if string(raw) != up.analysisRaw {
		t.Fatalf("raw body altered: %s", raw)
	}
	if len(repo.appended) != 1 || repo.appended[0].Ticker != "AAPL" {
		t.Fatalf("expected audit entry for analysis, got %+v", repo.appended)
	}
}

func TestForecastService_Compare_JoinsAllTickers(t *testing.T) {
	up := &fakeUpstream{rawByTick: map[string]string{
		"AAPL": `{"ticker":"AAPL"}`,
		"MSFT": `{"ticker":"MSFT"}`,
		"NVDA": `{"ticker":"NVDA"}`,
	}}
	repo := &fakeQueryRepo{}
	svc := NewForecastService(up, repo, nil)

	out, err := svc.Compare(context.Background(), "alice", []string{"AAPL", "MSFT", "NVDA"}, "2024-01-15")
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out))
	}
	for tick, want := range up.rawByTick {
		if string(out[tick]) != want {
			t.Fatalf("result for %s altered: %s", tick, out[tick])
		}
	}
	if len(up.calls) != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", len(up.calls))
	}
	if len(repo.appended) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(repo.appended))
	}
}

func TestForecastService_Compare_OneFailureFailsWhole(t *testing.T) {
	up := &fakeUpstream{
		rawByTick: map[string]string{"AAPL": `{"ticker":"AAPL"}`},
		errByTick: map[string]error{"MSFT": &mlclient.StatusError{Code: 400}},
	}
	repo := &fakeQueryRepo{}
	svc := NewForecastService(up, repo, nil)

	out, err := svc.Compare(context.Background(), "alice", []string{"AAPL", "MSFT"}, "2024-01-15")
	if err == nil {
		t.Fatalf("expected error, got results: %v", out)
	}
	var se *mlclient.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected wrapped StatusError, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected no partial results, got %v", out)
	}
	for _, q := range repo.appended {
		if q.Status != models.QueryStatusError {
			t.Fatalf("expected ERROR audit entries on failed comparison, got %+v", q)
		}
	}
}

func TestForecastService_Compare_EmptyTickers(t *testing.T) {
	svc := NewForecastService(&fakeUpstream{}, &fakeQueryRepo{}, nil)

	_, err := svc.Compare(context.Background(), "alice", nil, "2024-01-15")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
