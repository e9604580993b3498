package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"stockcast/internal/models"
	"stockcast/internal/service"

	"github.com/gin-gonic/gin"
)

// errFake stands in for unclassified internal failures.
var errFake = errors.New("boom")

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseIdent    *service.Identity
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (*service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdent, m.parseErr
}

type mockForecaster struct {
	forecastRaw json.RawMessage
	forecastErr error
	analysisRaw json.RawMessage
	analysisErr error
	compareOut  map[string]json.RawMessage
	compareErr  error

	forecastCalls int
	lastUsername  string
	lastRequest   models.ForecastRequest
	lastTicker    string
	lastTickers   []string
	lastDate      string
}

func (m *mockForecaster) Forecast(ctx context.Context, username string, req models.ForecastRequest) (json.RawMessage, error) {
	m.forecastCalls++
	m.lastUsername = username
	m.lastRequest = req
	return m.forecastRaw, m.forecastErr
}
func (m *mockForecaster) Analysis(ctx context.Context, username, ticker string) (json.RawMessage, error) {
	m.lastUsername = username
	m.lastTicker = ticker
	return m.analysisRaw, m.analysisErr
}
func (m *mockForecaster) Compare(ctx context.Context, username string, tickers []string, targetDate string) (map[string]json.RawMessage, error) {
	m.lastUsername = username
	m.lastTickers = tickers
	m.lastDate = targetDate
	return m.compareOut, m.compareErr
}

type mockHistory struct {
	resp       []models.ForecastQuery
	err        error
	lastFilter service.QueryFilter
}

func (m *mockHistory) List(ctx context.Context, f service.QueryFilter) ([]models.ForecastQuery, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockProbe struct {
	up bool
}

func (m *mockProbe) Run(ctx context.Context, tick time.Duration) {}
func (m *mockProbe) Up() bool                                    { return m.up }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
