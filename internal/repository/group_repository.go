package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"educrm_backend/internal/model"
)

type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

// Create создаёт новую группу. Имя группы уникально (23505 при дубликате).
func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	group.ID = uuid.NewString()

	query := `
		INSERT INTO groups (id, group_name, lesson_time, days)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		group.ID,
		group.GroupName,
		group.LessonTime,
		group.Days,
	).Scan(&group.CreatedAt, &group.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}

	return nil
}

// GetByID получает группу по ID
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*model.Group, error) {
	query := `
		SELECT id, group_name, lesson_time, days, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	var group model.Group
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.GroupName,
		&group.LessonTime,
		&group.Days,
		&group.CreatedAt,
		&group.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // Группа не найдена
		}
		return nil, fmt.Errorf("get group by id: %w", err)
	}

	return &group, nil
}

// List получает все группы в порядке создания
func (r *GroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	query := `
		SELECT id, group_name, lesson_time, days, created_at, updated_at
		FROM groups
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		var group model.Group
		err := rows.Scan(
			&group.ID,
			&group.GroupName,
			&group.LessonTime,
			&group.Days,
			&group.CreatedAt,
			&group.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}

	return groups, nil
}

// Update обновляет имя, время урока и дни группы
func (r *GroupRepository) Update(ctx context.Context, group *model.Group) error {
	query := `
		UPDATE groups
		SET group_name = $1, lesson_time = $2, days = $3, updated_at = now()
		WHERE id = $4
	`

	result, err := r.pool.Exec(
		ctx, query,
		group.GroupName,
		group.LessonTime,
		group.Days,
		group.ID,
	)

	if err != nil {
		return fmt.Errorf("update group: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("group not found")
	}

	return nil
}

// Delete удаляет группу вместе со студентами (каскад в схеме)
func (r *GroupRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete group: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// Count число групп для дашборда
func (r *GroupRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM groups`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return count, nil
}
