package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"educrm_backend/internal/app"
	"educrm_backend/internal/card"
	"educrm_backend/internal/config"
	httpcontroller "educrm_backend/internal/controller/http"
	"educrm_backend/internal/repository"
	"educrm_backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting educrm backend",
		"environment", cfg.Environment,
		"addr", cfg.HTTPAddr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Репозитории
	groupRepo := repository.NewGroupRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Сервисы
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, logger)
	groupService := service.NewGroupService(groupRepo, logger)
	studentService := service.NewStudentService(studentRepo, groupRepo, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, groupRepo, studentRepo, logger)
	billingService := service.NewBillingService(paymentRepo, expenseRepo, studentRepo, groupRepo, attendanceRepo, logger)
	dashboardService := service.NewDashboardService(groupRepo, studentRepo, attendanceRepo, paymentRepo, logger)

	cards := card.NewRenderer(cfg.FontPath)

	controller := httpcontroller.New(
		authService,
		groupService,
		studentService,
		attendanceService,
		billingService,
		dashboardService,
		cards,
		logger,
	)

	server := fiber.New(fiber.Config{
		AppName:     "educrm_backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	server.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	controller.RegisterRoutes(server)

	go func() {
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
