package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL PostgresStore needs.
const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id         TEXT PRIMARY KEY,
	key        TEXT NOT NULL,
	blob       BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS snapshots_key_id_idx ON snapshots (key, id DESC);
`

// PostgresStore appends one revision per Save; Load returns the newest.
type PostgresStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{Pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Pool.Ping(ctx)
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, Schema)
	return err
}

func (s *PostgresStore) Save(ctx context.Context, key string, blob []byte) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO snapshots (id, key, blob) VALUES ($1, $2, $3)`,
		NewID(), key, blob)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var blob []byte
	err := s.Pool.QueryRow(ctx,
		`SELECT blob FROM snapshots WHERE key = $1 ORDER BY id DESC LIMIT 1`,
		key).Scan(&blob)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.Pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, key)
	return err
}

// Revision is one stored snapshot row.
type Revision struct {
	ID        string
	CreatedAt time.Time
	Size      int
}

// Revisions lists stored snapshots for key, newest first.
func (s *PostgresStore) Revisions(ctx context.Context, key string) ([]Revision, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id, created_at, length(blob) FROM snapshots WHERE key = $1 ORDER BY id DESC`,
		key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Size); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Prune keeps the newest keep revisions for key and reports how many were removed.
func (s *PostgresStore) Prune(ctx context.Context, key string, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}
	tag, err := s.Pool.Exec(ctx, `
DELETE FROM snapshots
WHERE key = $1 AND id NOT IN (
	SELECT id FROM snapshots WHERE key = $1 ORDER BY id DESC LIMIT $2
)`, key, keep)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
