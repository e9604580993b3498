package models

import "time"

// Audit statuses for recorded forecast queries.
const (
	QueryStatusOK    = "OK"
	QueryStatusError = "ERROR"
)

// ForecastQuery is one audit-log entry: who asked for which forecast and how it went.
type ForecastQuery struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Username   string    `json:"username"`
	Ticker     string    `json:"ticker"`
	TargetDate string    `json:"target_date"`
	Status     string    `json:"status"` // OK | ERROR
}
