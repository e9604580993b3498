package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"stockcast/internal/logger"
	"stockcast/internal/mlclient"
	"stockcast/internal/models"
	"stockcast/internal/repository"
)

// upstream is the slice of mlclient.Client the forecast service needs;
// kept as an interface so tests can swap in a fake.
type upstream interface {
	Forecast(ctx context.Context, req models.ForecastRequest) (*mlclient.ForecastResult, error)
	Analysis(ctx context.Context, ticker string) (*mlclient.AnalysisResult, error)
}

type ForecastService struct {
	ml      upstream
	queries repository.QueryRepo
	log     *logger.Logger
}

func NewForecastService(ml upstream, queries repository.QueryRepo, log *logger.Logger) *ForecastService {
	return &ForecastService{ml: ml, queries: queries, log: log}
}

// Forecast forwards one request to the ML service and returns the raw
// upstream body. Exactly one outbound call per invocation; the audit entry
// is best-effort and never fails the response.
func (s *ForecastService) Forecast(ctx context.Context, username string, req models.ForecastRequest) (json.RawMessage, error) {
	res, err := s.ml.Forecast(ctx, req)
	s.record(ctx, username, req.Ticker, req.TargetDate, err)
	if err != nil {
		return nil, err
	}
	return res.Raw, nil
}

// Analysis forwards a technical-analysis request for one ticker.
func (s *ForecastService) Analysis(ctx context.Context, username, ticker string) (json.RawMessage, error) {
	res, err := s.ml.Analysis(ctx, ticker)
	s.record(ctx, username, ticker, "", err)
	if err != nil {
		return nil, err
	}
	return res.Raw, nil
}

// Compare runs one forecast per ticker concurrently and joins the results.
// The first failure cancels the remaining calls and fails the whole
// comparison; there is no partial result.
func (s *ForecastService) Compare(ctx context.Context, username string, tickers []string, targetDate string) (map[string]json.RawMessage, error) {
	if len(tickers) == 0 {
		return nil, ErrInvalidInput
	}

	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		out      = make(map[string]json.RawMessage, len(tickers))
	)

	for _, t := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			res, err := s.ml.Forecast(cctx, models.ForecastRequest{Ticker: ticker, TargetDate: targetDate})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("ticker %s: %w", ticker, err)
					cancel() // abandon the remaining sub-requests
				}
				return
			}
			out[ticker] = res.Raw
		}(t)
	}
	wg.Wait()

	for _, t := range tickers {
		s.record(ctx, username, t, targetDate, firstErr)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// record appends an audit entry; failures are logged, not propagated.
func (s *ForecastService) record(ctx context.Context, username, ticker, targetDate string, callErr error) {
	status := models.QueryStatusOK
	if callErr != nil {
		status = models.QueryStatusError
	}
	q := models.ForecastQuery{
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Username:   username,
		Ticker:     ticker,
		TargetDate: targetDate,
		Status:     status,
	}
	if err := s.queries.Append(ctx, q); err != nil && s.log != nil {
		s.log.Warnw("forecast_audit_append_failed", "err", err, "ticker", ticker, "username", username)
	}
}
