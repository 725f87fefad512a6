package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"educrm_backend/internal/model"
	"educrm_backend/internal/repository"
	"educrm_backend/internal/schedule"
)

type StudentService struct {
	studentRepo *repository.StudentRepository
	groupRepo   *repository.GroupRepository
	logger      *zap.Logger
}

func NewStudentService(
	studentRepo *repository.StudentRepository,
	groupRepo *repository.GroupRepository,
	logger *zap.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		groupRepo:   groupRepo,
		logger:      logger,
	}
}

// Create добавляет студента в группу. Если дни не выбраны,
// берутся канонические дни группы.
func (s *StudentService) Create(ctx context.Context, groupID, name, lastName, phone string, days []string) (*model.Student, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if group == nil {
		return nil, ErrNotFound
	}

	studentDays := schedule.Normalize(days)
	if len(days) == 0 {
		studentDays = group.Days
	}

	student := &model.Student{
		GroupID:     groupID,
		StudentName: name,
		LastName:    lastName,
		PhoneNumber: phone,
		Days:        studentDays,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info("Student created",
		zap.String("student_id", student.ID),
		zap.String("group_id", groupID))

	return student, nil
}

// ListByGroup студенты группы с поиском и пагинацией (страница группы)
func (s *StudentService) ListByGroup(ctx context.Context, groupID, search string, page, limit int) ([]*model.Student, int, error) {
	offset := 0
	if page > 1 && limit > 0 {
		offset = (page - 1) * limit
	}

	students, err := s.studentRepo.ListByGroup(ctx, groupID, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	total, err := s.studentRepo.CountByGroup(ctx, groupID, search)
	if err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}

	return students, total, nil
}

// Get возвращает студента по ID
func (s *StudentService) Get(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, ErrNotFound
	}
	return student, nil
}

// isGroupMove перевод в другую группу: целевая группа указана
// и отличается от текущей. Та же группа — обычная правка.
func isGroupMove(currentGroupID, targetGroupID string) bool {
	return targetGroupID != "" && targetGroupID != currentGroupID
}

// daysOnUpdate дни студента после правки: при переводе берутся
// канонические дни целевой группы, что бы ни было выбрано в форме;
// без перевода выбор нормализуется как обычно.
func daysOnUpdate(moved bool, targetDays, selected []string) []string {
	if moved {
		return targetDays
	}
	return schedule.Normalize(selected)
}

// Update правит данные студента. Перевод в другую группу перезаписывает
// дни студента каноническими днями целевой группы, что бы ни было выбрано.
func (s *StudentService) Update(ctx context.Context, id, targetGroupID, name, lastName, phone string, days []string) (*model.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	student.StudentName = name
	student.LastName = lastName
	student.PhoneNumber = phone

	if isGroupMove(student.GroupID, targetGroupID) {
		target, err := s.groupRepo.GetByID(ctx, targetGroupID)
		if err != nil {
			return nil, fmt.Errorf("get target group: %w", err)
		}
		if target == nil {
			return nil, ErrNotFound
		}

		student.GroupID = target.ID
		student.Days = daysOnUpdate(true, target.Days, days)

		s.logger.Info("Student moved to another group",
			zap.String("student_id", student.ID),
			zap.String("group_id", target.ID))
	} else {
		student.Days = daysOnUpdate(false, nil, days)
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	return student, nil
}

// Delete удаляет студента
func (s *StudentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("Student deleted", zap.String("student_id", id))
	return nil
}
