package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"orbosis/internal/utils"
	"orbosis/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	_ "modernc.org/sqlite"
)

const entriesTableName = "entries"

type entry struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

var entryColumns = utils.StructTagValues(entry{})

// SQLite is the on-disk backend, for deployments that must survive a
// process restart without the upstream backend.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create entries table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (s *SQLite) Get(ctx context.Context, key string) (*types.Profile, error) {
	raw, err := s.GetValue(ctx, key)
	if err != nil {
		return nil, err
	}

	return decodeProfile(raw), nil
}

func (s *SQLite) Set(ctx context.Context, key string, profile *types.Profile) error {
	raw, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	return s.SetValue(ctx, key, raw)
}

func (s *SQLite) Merge(ctx context.Context, key string, patch *types.Profile) (*types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	merged := mergeProfiles(existing, patch)
	if err := s.Set(ctx, key, merged); err != nil {
		return nil, err
	}

	return merged, nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	query, args, err := builder().
		Delete(entriesTableName).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete entry query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	return nil
}

func (s *SQLite) GetValue(ctx context.Context, key string) (string, error) {
	query, args, err := builder().
		Select(entryColumns...).
		From(entriesTableName).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select entry query: %w", err)
	}

	var row entry
	err = sqlscan.Get(ctx, s.db, &row, query, args...)
	if err != nil {
		if sqlscan.NotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("fetch entry: %w", err)
	}

	return row.Value, nil
}

func (s *SQLite) SetValue(ctx context.Context, key, value string) error {
	query, args, err := builder().
		Insert(entriesTableName).
		Columns(entryColumns...).
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert entry query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}

	return nil
}
