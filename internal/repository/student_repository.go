package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"educrm_backend/internal/model"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create добавляет студента в группу
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	student.ID = uuid.NewString()

	query := `
		INSERT INTO students (id, group_id, student_name, last_name, phone_number, days)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		student.ID,
		student.GroupID,
		student.StudentName,
		student.LastName,
		student.PhoneNumber,
		student.Days,
	).Scan(&student.CreatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID получает студента по ID
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	query := `
		SELECT id, group_id, student_name, last_name, phone_number, days, created_at
		FROM students
		WHERE id = $1
	`

	var student model.Student
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.GroupID,
		&student.StudentName,
		&student.LastName,
		&student.PhoneNumber,
		&student.Days,
		&student.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return &student, nil
}

// ListByGroup получает студентов группы с поиском по имени и пагинацией.
// search пустой — без фильтра; limit <= 0 — без пагинации.
func (r *StudentRepository) ListByGroup(ctx context.Context, groupID, search string, limit, offset int) ([]*model.Student, error) {
	query := `
		SELECT id, group_id, student_name, last_name, phone_number, days, created_at
		FROM students
		WHERE group_id = $1
		  AND ($2 = '' OR student_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%')
		ORDER BY created_at
	`
	args := []interface{}{groupID, search}

	if limit > 0 {
		query += ` LIMIT $3 OFFSET $4`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list students by group: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// CountByGroup считает студентов группы с тем же фильтром, что и ListByGroup
func (r *StudentRepository) CountByGroup(ctx context.Context, groupID, search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM students
		WHERE group_id = $1
		  AND ($2 = '' OR student_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%')
	`

	var count int
	if err := r.pool.QueryRow(ctx, query, groupID, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("count students by group: %w", err)
	}
	return count, nil
}

// ListAll получает всех студентов с именем их группы (для страницы оплат)
func (r *StudentRepository) ListAll(ctx context.Context) ([]*model.Student, error) {
	query := `
		SELECT s.id, s.group_id, s.student_name, s.last_name, s.phone_number, s.days, s.created_at, g.group_name
		FROM students s
		JOIN groups g ON g.id = s.group_id
		ORDER BY g.group_name, s.student_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		var st model.Student
		err := rows.Scan(
			&st.ID,
			&st.GroupID,
			&st.StudentName,
			&st.LastName,
			&st.PhoneNumber,
			&st.Days,
			&st.CreatedAt,
			&st.GroupName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}

// Update обновляет данные студента, включая группу и дни.
// Перевод в другую группу идёт через этот же метод: сервис
// предварительно перезаписывает дни днями целевой группы.
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET group_id = $1, student_name = $2, last_name = $3, phone_number = $4, days = $5
		WHERE id = $6
	`

	result, err := r.pool.Exec(
		ctx, query,
		student.GroupID,
		student.StudentName,
		student.LastName,
		student.PhoneNumber,
		student.Days,
		student.ID,
	)

	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// Delete удаляет студента
func (r *StudentRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// Count общее число студентов для дашборда
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}

func scanStudents(rows pgx.Rows) ([]*model.Student, error) {
	var students []*model.Student
	for rows.Next() {
		var st model.Student
		err := rows.Scan(
			&st.ID,
			&st.GroupID,
			&st.StudentName,
			&st.LastName,
			&st.PhoneNumber,
			&st.Days,
			&st.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}
