package repository

import (
	"context"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

func (r *Repository) CreateGradeRule(rule *domain.GradeRule) error {
	query := `
		INSERT INTO grade_rules (grade, shifts_per_week, needs_senior_buddy, can_do_night_shift)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{rule.Grade, rule.ShiftsPerWeek, rule.NeedsSeniorBuddy, rule.CanDoNightShift}
	dst := []any{&rule.ID, &rule.CreatedAt, &rule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllGradeRules() ([]*domain.GradeRule, error) {
	query := `
		SELECT id, grade, shifts_per_week, needs_senior_buddy, can_do_night_shift, created_at, version
		FROM grade_rules ORDER BY grade ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rules := make([]*domain.GradeRule, 0)
	for rows.Next() {
		rule := &domain.GradeRule{}
		dst := []any{&rule.ID, &rule.Grade, &rule.ShiftsPerWeek, &rule.NeedsSeniorBuddy, &rule.CanDoNightShift, &rule.CreatedAt, &rule.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}

func (r *Repository) GetGradeRuleByID(id int64) (*domain.GradeRule, error) {
	query := `
		SELECT grade, shifts_per_week, needs_senior_buddy, can_do_night_shift, created_at, version
		FROM grade_rules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rule := &domain.GradeRule{
		ID: id,
	}

	dst := []any{&rule.Grade, &rule.ShiftsPerWeek, &rule.NeedsSeniorBuddy, &rule.CanDoNightShift, &rule.CreatedAt, &rule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return rule, nil
}

func (r *Repository) UpdateGradeRule(rule *domain.GradeRule) error {
	query := `
		UPDATE grade_rules
		SET
			grade = $1,
			shifts_per_week = $2,
			needs_senior_buddy = $3,
			can_do_night_shift = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{rule.Grade, rule.ShiftsPerWeek, rule.NeedsSeniorBuddy, rule.CanDoNightShift, rule.ID, rule.Version}
	dst := []any{&rule.CreatedAt, &rule.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGradeRule(id int64) error {
	query := `
		DELETE FROM grade_rules WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
