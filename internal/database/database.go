package database

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

const schema = `CREATE TABLE IF NOT EXISTS readings (
	id BIGSERIAL PRIMARY KEY,
	suhu DOUBLE PRECISION NOT NULL,
	humidity DOUBLE PRECISION NOT NULL,
	lux DOUBLE PRECISION NOT NULL,
	captured_at TIMESTAMPTZ NOT NULL
)`

func Connect() (*sqlx.DB, error) {
	dsn := viper.GetString("DB_DSN")
	return sqlx.Connect("pgx", dsn)
}

// EnsureSchema creates the readings table if it does not exist yet.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
