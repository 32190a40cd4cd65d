package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"geoalert/internal/storage"
	"geoalert/pkg/e"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_records (
	key        text PRIMARY KEY,
	value      bytea NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS kv_records_key_prefix_idx ON kv_records (key text_pattern_ops);
`

// KV maps the key-value substrate onto a single table. Last write wins.
type KV struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewKV(pool *pgxpool.Pool, logger *slog.Logger) *KV {
	return &KV{pool: pool, logger: logger}
}

func (p *KV) EnsureSchema(ctx context.Context) error {
	const op = "postgres.KV.EnsureSchema"
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "postgres.KV.Get"

	var value []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM kv_records WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %s: %w", op, key, e.ErrNotFound)
		}
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return value, nil
}

func (p *KV) Set(ctx context.Context, key string, value []byte) error {
	const op = "postgres.KV.Set"

	const query = `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := p.pool.Exec(ctx, query, key, value); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *KV) Delete(ctx context.Context, keys ...string) error {
	const op = "postgres.KV.Delete"
	if len(keys) == 0 {
		return nil
	}
	if _, err := p.pool.Exec(ctx, `DELETE FROM kv_records WHERE key = ANY($1)`, keys); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *KV) Scan(ctx context.Context, prefix string) ([]storage.Entry, error) {
	const op = "postgres.KV.Scan"

	const query = `
		SELECT key, value
		FROM kv_records
		WHERE key LIKE $1 ESCAPE '\'
		ORDER BY key
	`
	rows, err := p.pool.Query(ctx, query, escapeLike(prefix)+"%")
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]storage.Entry, 0)
	for rows.Next() {
		var entry storage.Entry
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
