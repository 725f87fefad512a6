package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"educrm_backend/internal/attendance"
	"educrm_backend/internal/model"
	"educrm_backend/internal/repository"
	"educrm_backend/internal/schedule"
)

type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	groupRepo      *repository.GroupRepository
	studentRepo    *repository.StudentRepository
	logger         *zap.Logger

	now func() time.Time // подменяется в тестах
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	groupRepo *repository.GroupRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		groupRepo:      groupRepo,
		studentRepo:    studentRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Mark одно решение оператора по студенту в рамках сохранения.
type Mark struct {
	StudentID    string
	Status       model.AttendanceStatus
	DelayMinutes int
}

// SessionView состояние сессии отметки для клиента: либо свежий pending-ростер,
// либо снапшот уже сохранённой записи (alreadyMarked).
type SessionView struct {
	GroupID       string                  `json:"groupId"`
	GroupName     string                  `json:"groupName"`
	LessonTime    string                  `json:"lessonTime"`
	Date          string                  `json:"date"`
	Day           string                  `json:"day"`
	AlreadyMarked bool                    `json:"alreadyMarked"`
	Students      []model.AttendanceEntry `json:"students"`
	Summary       attendance.Summary      `json:"summary"`
}

// OpenSession открывает день для группы. Если запись уже существует,
// возвращается её снапшот, а не свежий ростер: запись — источник истины.
func (s *AttendanceService) OpenSession(ctx context.Context, groupID, date string) (*SessionView, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if group == nil {
		return nil, ErrNotFound
	}

	existing, err := s.attendanceRepo.GetByGroupAndDate(ctx, groupID, date)
	if err != nil {
		return nil, fmt.Errorf("check existing attendance: %w", err)
	}

	if existing != nil {
		sess := attendance.Restore(existing)
		return &SessionView{
			GroupID:       group.ID,
			GroupName:     group.GroupName,
			LessonTime:    group.LessonTime,
			Date:          existing.Date,
			Day:           existing.Day,
			AlreadyMarked: true,
			Students:      sess.Entries(),
			Summary:       sess.Summary(),
		}, nil
	}

	roster, err := s.studentRepo.ListByGroup(ctx, groupID, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	students := make([]model.Student, len(roster))
	for i, st := range roster {
		students[i] = *st
	}

	sess := attendance.NewSession(groupID, date, students)
	return &SessionView{
		GroupID:    group.ID,
		GroupName:  group.GroupName,
		LessonTime: group.LessonTime,
		Date:       date,
		Day:        schedule.Today(s.now()),
		Students:   sess.Entries(),
		Summary:    sess.Summary(),
	}, nil
}

// Save прогоняет решения оператора через сессию и сохраняет итоговую
// запись. Дубликат за (группа, дата) отклоняется атомарно на вставке.
func (s *AttendanceService) Save(ctx context.Context, groupID, date string, marks []Mark) (*model.AttendanceRecord, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if group == nil {
		return nil, ErrNotFound
	}

	roster, err := s.studentRepo.ListByGroup(ctx, groupID, "", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	students := make([]model.Student, len(roster))
	for i, st := range roster {
		students[i] = *st
	}

	sess := attendance.NewSession(groupID, date, students)
	for _, mark := range marks {
		if mark.Status == model.AttendanceStatusPending {
			continue // не отмеченных в снапшоте и так сохраняем как pending
		}
		if err := sess.Mark(mark.StudentID, mark.Status, mark.DelayMinutes); err != nil {
			return nil, err
		}
	}

	rec, err := sess.Record(group, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info("Attendance saved",
		zap.String("group_id", groupID),
		zap.String("date", date),
		zap.Int("present", rec.PresentCount),
		zap.Int("late", rec.LateCount),
		zap.Int("absent", rec.AbsentCount))

	return rec, nil
}

// History записи посещаемости с фильтрами по группе и дате.
// Число отсутствовавших для показа выводится из total/present/late:
// в истории всё, что не отмечено пришедшим, считается пропуском.
func (s *AttendanceService) History(ctx context.Context, groupID, date string) ([]*model.AttendanceRecord, error) {
	records, err := s.attendanceRepo.List(ctx, groupID, date)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		rec.AbsentCount = attendance.DerivedAbsent(rec)
	}

	return records, nil
}

// Delete удаляет запись за день. Единственный способ исправления:
// запись неизменяемая, аудита нет.
func (s *AttendanceService) Delete(ctx context.Context, id string) error {
	deleted, err := s.attendanceRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("Attendance record deleted", zap.String("record_id", id))
	return nil
}
