package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stockcast/internal/models"
	"stockcast/internal/service"
)

func historyRouter(m *mockHistory) http.Handler {
	s := &service.Service{
		Authorization: &mockAuth{parseIdent: &service.Identity{UserID: 1, Username: "alice"}},
		History:       m,
	}
	return newTestRouter(s)
}

func getHistory(r http.Handler, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/history"+query, nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)
	return w
}

func TestGetHistory_ReturnsCountAndQueries(t *testing.T) {
	m := &mockHistory{resp: []models.ForecastQuery{
		{ID: "q1", Username: "alice", Ticker: "AAPL", TargetDate: "2024-01-15", Status: models.QueryStatusOK},
		{ID: "q2", Username: "alice", Ticker: "MSFT", TargetDate: "2024-01-15", Status: models.QueryStatusError},
	}}
	r := historyRouter(m)

	w := getHistory(r, "?ticker=aapl")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var out struct {
		Count   int                    `json:"count"`
		Queries []models.ForecastQuery `json:"queries"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 2 || len(out.Queries) != 2 {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
	// ticker is normalized to upper case before hitting the service
	if m.lastFilter.Ticker != "AAPL" {
		t.Fatalf("filter ticker=%q, want AAPL", m.lastFilter.Ticker)
	}
}

func TestGetHistory_TimeFilters(t *testing.T) {
	m := &mockHistory{}
	r := historyRouter(m)

	w := getHistory(r, "?from=2025-08-01&to=2025-08-31")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	wantFrom := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	if !m.lastFilter.From.Equal(wantFrom) {
		t.Fatalf("from=%v, want %v", m.lastFilter.From, wantFrom)
	}
	// date-only 'to' becomes end-of-day inclusive
	if m.lastFilter.To.Day() != 31 || m.lastFilter.To.Hour() != 23 {
		t.Fatalf("to not end-of-day: %v", m.lastFilter.To)
	}
}

func TestGetHistory_BadRange(t *testing.T) {
	r := historyRouter(&mockHistory{})

	w := getHistory(r, "?from=2025-08-31&to=2025-08-01")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", w.Code)
	}

	w = getHistory(r, "?from=not-a-time")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400 for unparsable from", w.Code)
	}
}
