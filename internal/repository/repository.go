package repository

import (
	"context"
	"database/sql"
	"time"

	"stockcast/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// QueryRepo is the append-only audit log of forecast queries.
type QueryRepo interface {
	Append(ctx context.Context, q models.ForecastQuery) error
	List(ctx context.Context, from, to time.Time, ticker string) ([]models.ForecastQuery, error)
}

type Repository struct {
	Auth    Authorization
	Queries QueryRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(db),
		Queries: NewQuerySQLite(db),
	}
}
