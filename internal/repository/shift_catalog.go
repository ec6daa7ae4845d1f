package repository

import (
	"context"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// GetShiftSpecs 返回当前生效的班次目录，
// 若数据库中没有任何配置则回退到默认班次
func (r *Repository) GetShiftSpecs() ([]string, error) {
	query := `
		SELECT spec FROM shift_specs ORDER BY position ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	specs := make([]string, 0)
	for rows.Next() {
		var spec string
		if err := rows.Scan(&spec); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(specs) == 0 {
		return domain.DefaultShiftSpecs, nil
	}

	return specs, nil
}

// ReplaceShiftSpecs 用给定的班次列表整体替换目录
func (r *Repository) ReplaceShiftSpecs(specs []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_specs`); err != nil {
		return err
	}

	query := `
		INSERT INTO shift_specs (spec, position) VALUES ($1, $2)
	`
	for i, spec := range specs {
		if _, err := tx.ExecContext(ctx, query, spec, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
