package score

import (
	"context"
	"database/sql"
	"sync"
)

type SQLStore struct{ db *sql.DB }

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Append(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO game_scores (id,user_id,display_name,score,time_taken_ms,completed_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		r.ID, r.UserID, r.DisplayName, r.Score, r.TimeTakenMs, r.CompletedAt)
	return err
}

func (s *SQLStore) ListSince(ctx context.Context, cutoff int64) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,user_id,display_name,score,time_taken_ms,completed_at
		 FROM game_scores WHERE completed_at >= $1
		 ORDER BY score DESC, time_taken_ms ASC`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.UserID, &r.DisplayName, &r.Score, &r.TimeTakenMs, &r.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type memoryStore struct {
	mu   sync.RWMutex
	rows []Result
}

// NewInMemoryStore backs the score contract with a slice, for tests.
func NewInMemoryStore() Store { return &memoryStore{} }

func (m *memoryStore) Append(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, r)
	return nil
}

func (m *memoryStore) ListSince(ctx context.Context, cutoff int64) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Result{}
	for _, r := range m.rows {
		if r.CompletedAt >= cutoff {
			out = append(out, r)
		}
	}
	return out, nil
}
