package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func (r *Repository) InsertScheduleHistory(history *domain.ScheduleHistory) error {
	query := `
		INSERT INTO schedule_histories (result)
		VALUES ($1)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	resultJSON, err := json.Marshal(history.Result)
	if err != nil {
		return err
	}

	dst := []any{&history.ID, &history.CreatedAt, &history.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, resultJSON).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllScheduleHistories() ([]*domain.ScheduleHistory, error) {
	query := `
		SELECT id, result, created_at, version
		FROM schedule_histories ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]*domain.ScheduleHistory, 0)
	for rows.Next() {
		history := &domain.ScheduleHistory{}
		var resultJSON []byte
		dst := []any{&history.ID, &resultJSON, &history.CreatedAt, &history.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(resultJSON, &history.Result); err != nil {
			return nil, err
		}
		histories = append(histories, history)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return histories, nil
}

func (r *Repository) GetScheduleHistoryByID(id int64) (*domain.ScheduleHistory, error) {
	query := `
		SELECT result, created_at, version
		FROM schedule_histories WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	history := &domain.ScheduleHistory{
		ID: id,
	}

	var resultJSON []byte
	dst := []any{&resultJSON, &history.CreatedAt, &history.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resultJSON, &history.Result); err != nil {
		return nil, err
	}

	return history, nil
}

func (r *Repository) DeleteScheduleHistory(id int64) error {
	query := `
		DELETE FROM schedule_histories WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
