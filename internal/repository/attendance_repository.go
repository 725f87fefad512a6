package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"educrm_backend/internal/attendance"
	"educrm_backend/internal/model"
)

const dateLayout = "2006-01-02"

type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Create сохраняет запись посещаемости вместе со снапшотом студентов.
// Проверка "уже отмечено" и вставка — один условный INSERT по уникальному
// ключу (group_id, att_date), так что гонка двух операторов невозможна:
// второй получает attendance.ErrAlreadyMarked.
func (r *AttendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rec.ID = uuid.NewString()

	query := `
		INSERT INTO attendance_records
			(id, group_id, group_name, lesson_time, day, att_date,
			 total_students, present_count, absent_count, late_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT ON CONSTRAINT attendance_one_per_day DO NOTHING
		RETURNING created_at
	`

	err = tx.QueryRow(
		ctx, query,
		rec.ID,
		rec.GroupID,
		rec.GroupName,
		rec.LessonTime,
		rec.Day,
		rec.Date,
		rec.TotalStudents,
		rec.PresentCount,
		rec.AbsentCount,
		rec.LateCount,
	).Scan(&rec.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			// конфликт по (group_id, att_date): кто-то успел раньше
			return attendance.ErrAlreadyMarked
		}
		return fmt.Errorf("insert attendance record: %w", err)
	}

	for i, entry := range rec.Attendance {
		_, err = tx.Exec(ctx, `
			INSERT INTO attendance_entries (record_id, student_id, student_name, last_name, status, delay, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, rec.ID, entry.ID, entry.StudentName, entry.LastName, entry.Status, entry.Delay, i)
		if err != nil {
			return fmt.Errorf("insert attendance entry: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByGroupAndDate получает запись за день вместе со снапшотом студентов
func (r *AttendanceRepository) GetByGroupAndDate(ctx context.Context, groupID, date string) (*model.AttendanceRecord, error) {
	query := `
		SELECT id, group_id, group_name, lesson_time, day, att_date,
		       total_students, present_count, absent_count, late_count, created_at
		FROM attendance_records
		WHERE group_id = $1 AND att_date = $2
	`

	rec, err := r.scanRecord(r.pool.QueryRow(ctx, query, groupID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // за этот день ещё не отмечали
		}
		return nil, fmt.Errorf("get attendance by group and date: %w", err)
	}

	if err := r.loadEntries(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// List получает записи без снапшотов, с необязательными фильтрами.
// groupID и date пустые — вся история (страница истории посещаемости).
func (r *AttendanceRepository) List(ctx context.Context, groupID, date string) ([]*model.AttendanceRecord, error) {
	query, args := buildListQuery(groupID, date)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	defer rows.Close()

	var records []*model.AttendanceRecord
	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance records: %w", err)
	}

	return records, nil
}

// Delete удаляет запись безусловно (единственный способ исправления).
// Снапшот студентов уходит каскадом.
func (r *AttendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete attendance record: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// LessonCounts число посещённых уроков (present или late) по каждому студенту.
// Это lessonCount для платёжного статуса.
func (r *AttendanceRepository) LessonCounts(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT student_id::text, COUNT(*)
		FROM attendance_entries
		WHERE status IN ('present', 'late')
		GROUP BY student_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count lessons: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var studentID string
		var count int
		if err := rows.Scan(&studentID, &count); err != nil {
			return nil, fmt.Errorf("scan lesson count: %w", err)
		}
		counts[studentID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson counts: %w", err)
	}

	return counts, nil
}

// Totals суммарные счётчики по всей истории для дашборда
func (r *AttendanceRepository) Totals(ctx context.Context) (present, late, absent int, err error) {
	query := `
		SELECT COALESCE(SUM(present_count), 0),
		       COALESCE(SUM(late_count), 0),
		       COALESCE(SUM(absent_count), 0)
		FROM attendance_records
	`

	if err = r.pool.QueryRow(ctx, query).Scan(&present, &late, &absent); err != nil {
		return 0, 0, 0, fmt.Errorf("attendance totals: %w", err)
	}
	return present, late, absent, nil
}

// buildListQuery собирает запрос истории с условными фильтрами.
// Пустой фильтр в запрос не попадает вовсе: приведение '' к date
// падает ещё при планировании, на порядок вычисления OR полагаться нельзя.
func buildListQuery(groupID, date string) (string, []interface{}) {
	query := `
		SELECT id, group_id, group_name, lesson_time, day, att_date,
		       total_students, present_count, absent_count, late_count, created_at
		FROM attendance_records
	`

	var conds []string
	var args []interface{}

	if groupID != "" {
		args = append(args, groupID)
		conds = append(conds, fmt.Sprintf("group_id = $%d", len(args)))
	}
	if date != "" {
		args = append(args, date)
		conds = append(conds, fmt.Sprintf("att_date = $%d::date", len(args)))
	}

	if len(conds) > 0 {
		query += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	query += "ORDER BY att_date DESC, group_name"

	return query, args
}

func (r *AttendanceRepository) scanRecord(row pgx.Row) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	var attDate time.Time
	err := row.Scan(
		&rec.ID,
		&rec.GroupID,
		&rec.GroupName,
		&rec.LessonTime,
		&rec.Day,
		&attDate,
		&rec.TotalStudents,
		&rec.PresentCount,
		&rec.AbsentCount,
		&rec.LateCount,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Date = attDate.Format(dateLayout)
	return &rec, nil
}

func (r *AttendanceRepository) loadEntries(ctx context.Context, rec *model.AttendanceRecord) error {
	rows, err := r.pool.Query(ctx, `
		SELECT student_id::text, student_name, last_name, status, delay
		FROM attendance_entries
		WHERE record_id = $1
		ORDER BY position
	`, rec.ID)
	if err != nil {
		return fmt.Errorf("load attendance entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry model.AttendanceEntry
		if err := rows.Scan(&entry.ID, &entry.StudentName, &entry.LastName, &entry.Status, &entry.Delay); err != nil {
			return fmt.Errorf("scan attendance entry: %w", err)
		}
		rec.Attendance = append(rec.Attendance, entry)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate attendance entries: %w", err)
	}

	return nil
}
