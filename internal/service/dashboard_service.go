package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"educrm_backend/internal/format"
	"educrm_backend/internal/repository"
)

type DashboardService struct {
	groupRepo      *repository.GroupRepository
	studentRepo    *repository.StudentRepository
	attendanceRepo *repository.AttendanceRepository
	paymentRepo    *repository.PaymentRepository
	logger         *zap.Logger
}

func NewDashboardService(
	groupRepo *repository.GroupRepository,
	studentRepo *repository.StudentRepository,
	attendanceRepo *repository.AttendanceRepository,
	paymentRepo *repository.PaymentRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		groupRepo:      groupRepo,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		logger:         logger,
	}
}

// Stats сводка главной страницы админки
type Stats struct {
	Groups       int    `json:"groups"`
	Students     int    `json:"students"`
	Present      int    `json:"present"`
	Late         int    `json:"late"`
	Absent       int    `json:"absent"`
	Revenue      int64  `json:"revenue"`
	RevenueLabel string `json:"revenueLabel"`
	RevenueShort string `json:"revenueShort"`
	Paid         int    `json:"paid"`
	Unpaid       int    `json:"unpaid"`
}

// Stats собирает счётчики по всем коллекциям
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var err error

	if stats.Groups, err = s.groupRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.Students, err = s.studentRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.Present, stats.Late, stats.Absent, err = s.attendanceRepo.Totals(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.Revenue, err = s.paymentRepo.Revenue(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.Paid, stats.Unpaid, err = s.paymentRepo.CountByStatus(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	stats.RevenueLabel = format.Amount(stats.Revenue)
	stats.RevenueShort = format.ShortAmount(stats.Revenue)

	return stats, nil
}
