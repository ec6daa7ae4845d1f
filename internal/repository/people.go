package repository

import (
	"context"
	"time"

	"github.com/apollomonasa/duty-roster/backend/internal/domain"
)

// UpsertPeople 批量插入或更新人员信息，学号相同的记录会被覆盖，
// 返回本次导入中新增和更新的人数
func (r *Repository) UpsertPeople(people []*domain.Person) (*domain.ImportResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// 先查出已存在的学号，用于统计新增和更新的人数
	rows, err := tx.QueryContext(ctx, `SELECT student_id FROM people`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[string]bool)
	for rows.Next() {
		var studentID string
		if err := rows.Scan(&studentID); err != nil {
			return nil, err
		}
		existing[studentID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{}

	query := `
		INSERT INTO people (student_id, name, class_times)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id) DO UPDATE
		SET name = EXCLUDED.name, class_times = EXCLUDED.class_times, version = people.version + 1
	`
	for _, person := range people {
		if _, err := tx.ExecContext(ctx, query, person.StudentID, person.Name, person.AllClassTimes); err != nil {
			return nil, err
		}
		if existing[person.StudentID] {
			result.UpdatedCount++
		} else {
			result.NewCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Repository) GetAllPeople() ([]*domain.Person, error) {
	query := `
		SELECT student_id, name, class_times, created_at, version
		FROM people ORDER BY student_id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]*domain.Person, 0)
	for rows.Next() {
		person := &domain.Person{}
		dst := []any{&person.StudentID, &person.Name, &person.AllClassTimes, &person.CreatedAt, &person.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return people, nil
}

func (r *Repository) GetPersonByStudentID(studentID string) (*domain.Person, error) {
	query := `
		SELECT name, class_times, created_at, version
		FROM people WHERE student_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	person := &domain.Person{
		StudentID: studentID,
	}

	dst := []any{&person.Name, &person.AllClassTimes, &person.CreatedAt, &person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, studentID).Scan(dst...); err != nil {
		return nil, err
	}

	return person, nil
}

func (r *Repository) UpdatePerson(person *domain.Person) error {
	query := `
		UPDATE people
		SET
			name = $1,
			class_times = $2,
			version = version + 1
		WHERE student_id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{person.Name, person.AllClassTimes, person.StudentID, person.Version}
	dst := []any{&person.CreatedAt, &person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePerson(studentID string) error {
	query := `
		DELETE FROM people WHERE student_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, studentID)
	if err != nil {
		return err
	}

	return nil
}
