package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) Get(ctx context.Context, userID string) (Progress, error) {
	return scanProgress(s.db.QueryRowContext(ctx,
		`SELECT user_id,current_lesson,completed_lessons_json,updated_at
		 FROM learner_progress WHERE user_id=$1`, userID))
}

// CompleteLesson performs the union+max update inside a single transaction.
// On postgres the row is locked with FOR UPDATE; sqlite serializes writers on
// its own. Two concurrent completions therefore cannot drop a set member or
// regress the pointer.
func (s *SQLStore) CompleteLesson(ctx context.Context, userID string, lessonID int) (Progress, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Progress{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	q := `SELECT user_id,current_lesson,completed_lessons_json,updated_at
	      FROM learner_progress WHERE user_id=$1`
	if s.driver == "postgres" {
		q += ` FOR UPDATE`
	}
	cur, err := scanProgress(tx.QueryRowContext(ctx, q, userID))
	now := time.Now().Unix()
	switch {
	case errors.Is(err, ErrNoProgress):
		p := fresh(userID, lessonID)
		p.UpdatedAt = now
		buf, _ := json.Marshal(p.CompletedLessons)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO learner_progress (user_id,current_lesson,completed_lessons_json,updated_at)
			 VALUES ($1,$2,$3,$4)`,
			p.UserID, p.CurrentLesson, string(buf), p.UpdatedAt); err != nil {
			return Progress{}, err
		}
		if err := tx.Commit(); err != nil {
			return Progress{}, err
		}
		return p, nil
	case err != nil:
		return Progress{}, err
	}

	p := merge(cur, lessonID)
	p.UpdatedAt = now
	buf, _ := json.Marshal(p.CompletedLessons)
	if _, err := tx.ExecContext(ctx,
		`UPDATE learner_progress SET current_lesson=$1, completed_lessons_json=$2, updated_at=$3
		 WHERE user_id=$4`,
		p.CurrentLesson, string(buf), p.UpdatedAt, userID); err != nil {
		return Progress{}, err
	}
	if err := tx.Commit(); err != nil {
		return Progress{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgress(row rowScanner) (Progress, error) {
	var p Progress
	var cjson string
	if err := row.Scan(&p.UserID, &p.CurrentLesson, &cjson, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Progress{}, ErrNoProgress
		}
		return Progress{}, err
	}
	if err := json.Unmarshal([]byte(cjson), &p.CompletedLessons); err != nil {
		return Progress{}, err
	}
	return p, nil
}
