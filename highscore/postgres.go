package highscore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS highscores (
	id          SERIAL PRIMARY KEY,
	score       INTEGER NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresStore keeps scores in the highscores table.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

// Migrate creates the highscores table if it does not exist.
func (p *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create highscores table: %w", err)
	}
	return nil
}

func (p *PostgresStore) Append(ctx context.Context, score int) error {
	_, err := p.DB.ExecContext(ctx, `INSERT INTO highscores (score) VALUES ($1)`, score)
	if err != nil {
		return fmt.Errorf("failed to insert score: %w", err)
	}
	return nil
}

func (p *PostgresStore) Scores(ctx context.Context) ([]int, error) {
	rows, err := p.DB.QueryContext(ctx, `SELECT score FROM highscores ORDER BY recorded_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}

func (p *PostgresStore) Close() error {
	return p.DB.Close()
}
