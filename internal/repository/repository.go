package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ridayanti/sensor-monitor/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// Append persists a reading and assigns its id. Ids follow append order.
func (r *Repos) Append(rd *domain.Reading) (int64, error) {
	var id int64
	err := r.db.Get(&id,
		`INSERT INTO readings(suhu, humidity, lux, captured_at) VALUES ($1,$2,$3,$4) RETURNING id`,
		rd.Temperature, rd.Humidity, rd.Lux, rd.CapturedAt)
	if err != nil {
		return 0, err
	}
	rd.ID = id
	return id, nil
}

// Recent returns up to limit readings, newest first.
func (r *Repos) Recent(limit int) ([]domain.Reading, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("recent: limit must be positive, got %d", limit)
	}
	var out []domain.Reading
	err := r.db.Select(&out,
		`SELECT id, suhu, humidity, lux, captured_at FROM readings ORDER BY id DESC LIMIT $1`, limit)
	return out, err
}

// All returns every reading in one read, for the summary engine.
func (r *Repos) All() ([]domain.Reading, error) {
	var out []domain.Reading
	err := r.db.Select(&out,
		`SELECT id, suhu, humidity, lux, captured_at FROM readings ORDER BY id`)
	return out, err
}
