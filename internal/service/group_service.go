package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"educrm_backend/internal/model"
	"educrm_backend/internal/repository"
	"educrm_backend/internal/repository/base"
	"educrm_backend/internal/schedule"
)

type GroupService struct {
	groupRepo *repository.GroupRepository
	logger    *zap.Logger
}

func NewGroupService(groupRepo *repository.GroupRepository, logger *zap.Logger) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		logger:    logger,
	}
}

// Create создаёт группу. Дни приводятся к каноническому виду,
// дубликат имени отклоняется.
func (s *GroupService) Create(ctx context.Context, name, lessonTime string, days []string) (*model.Group, error) {
	group := &model.Group{
		GroupName:  name,
		LessonTime: lessonTime,
		Days:       schedule.Normalize(days),
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrDuplicateGroup
		}
		return nil, fmt.Errorf("create group: %w", err)
	}

	s.logger.Info("Group created",
		zap.String("group_id", group.ID),
		zap.String("group_name", group.GroupName))

	return group, nil
}

// List возвращает все группы
func (s *GroupService) List(ctx context.Context) ([]*model.Group, error) {
	return s.groupRepo.List(ctx)
}

// Get возвращает группу по ID
func (s *GroupService) Get(ctx context.Context, id string) (*model.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get group: %w", err)
	}
	if group == nil {
		return nil, ErrNotFound
	}
	return group, nil
}

// Update обновляет группу, дни снова нормализуются
func (s *GroupService) Update(ctx context.Context, id, name, lessonTime string, days []string) (*model.Group, error) {
	group, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	group.GroupName = name
	group.LessonTime = lessonTime
	group.Days = schedule.Normalize(days)

	if err := s.groupRepo.Update(ctx, group); err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrDuplicateGroup
		}
		return nil, fmt.Errorf("update group: %w", err)
	}

	return group, nil
}

// Delete удаляет группу вместе со студентами. История посещаемости остаётся.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	deleted, err := s.groupRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete group: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.logger.Info("Group deleted", zap.String("group_id", id))
	return nil
}
