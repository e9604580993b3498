package service

import (
	"context"
	"encoding/json"
	"time"

	"stockcast/internal/config"
	"stockcast/internal/logger"
	"stockcast/internal/mlclient"
	"stockcast/internal/models"
	"stockcast/internal/repository"
)

// Identity is the decoded claim set of a verified session token.
type Identity struct {
	UserID   int
	Username string
}

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (*Identity, error)
}

// Forecaster proxies forecast/analysis requests to the ML service and
// records an audit entry per query. Raw upstream bodies are returned
// untouched so handlers can relay them byte-for-byte.
type Forecaster interface {
	Forecast(ctx context.Context, username string, req models.ForecastRequest) (json.RawMessage, error)
	Analysis(ctx context.Context, username, ticker string) (json.RawMessage, error)
	Compare(ctx context.Context, username string, tickers []string, targetDate string) (map[string]json.RawMessage, error)
}

// History exposes the forecast-query audit log with filtering access.
type History interface {
	List(ctx context.Context, f QueryFilter) ([]models.ForecastQuery, error)
}

// Probe runs the background upstream reachability check.
// Stop via context cancellation in main() for graceful shutdown.
type Probe interface {
	Run(ctx context.Context, tick time.Duration)
	Up() bool
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Forecaster
	History
	Probe
}

// NewService wires repositories and the ML client into concrete services.
func NewService(repos *repository.Repository, ml *mlclient.Client, cfg *config.Config, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey),
		Forecaster:    NewForecastService(ml, repos.Queries, log),
		History:       NewHistoryService(repos.Queries),
		Probe:         NewProbeService(cfg.MLBaseURL, log),
	}
}
