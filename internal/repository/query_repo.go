package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockcast/internal/models"
)

type QuerySQLite struct {
	db *sql.DB
}

func NewQuerySQLite(db *sql.DB) *QuerySQLite { return &QuerySQLite{db: db} }

var _ QueryRepo = (*QuerySQLite)(nil)

const insertQuerySQL = `
		INSERT INTO forecast_queries (id, occurred_at, username, ticker, target_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

// Timestamps are stored as TEXT in this layout; range filters must bind the
// same layout so lexicographic comparison matches chronological order.
const timeLayout = "2006-01-02 15:04:05"

// Append inserts a new audit entry. Empty ID and zero OccurredAt get defaults.
func (r *QuerySQLite) Append(ctx context.Context, q models.ForecastQuery) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.OccurredAt.IsZero() {
		q.OccurredAt = time.Now().UTC()
	} else {
		q.OccurredAt = q.OccurredAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertQuerySQL,
		q.ID,
		q.OccurredAt.Format(timeLayout),
		q.Username,
		strings.ToUpper(strings.TrimSpace(q.Ticker)),
		q.TargetDate,
		strings.ToUpper(strings.TrimSpace(q.Status)),
	)
	return err
}

// List returns audit entries filtered by [from, to] (inclusive) and/or ticker, ordered ASC.
func (r *QuerySQLite) List(ctx context.Context, from, to time.Time, ticker string) ([]models.ForecastQuery, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(timeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(timeLayout))
	}
	if ticker = strings.ToUpper(strings.TrimSpace(ticker)); ticker != "" {
		conds = append(conds, "ticker = ?")
		args = append(args, ticker)
	}

	q := `SELECT id, occurred_at, username, ticker, target_date, status FROM forecast_queries`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ForecastQuery, 0, 64)
	for rows.Next() {
		var fq models.ForecastQuery
		if err := rows.Scan(&fq.ID, &fq.OccurredAt, &fq.Username, &fq.Ticker, &fq.TargetDate, &fq.Status); err != nil {
			return nil, err
		}
		fq.OccurredAt = fq.OccurredAt.UTC()
		out = append(out, fq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
