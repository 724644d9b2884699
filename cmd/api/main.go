package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hr-system-api/internal/auth"
	"github.com/hr-system-api/internal/config"
	"github.com/hr-system-api/internal/domain"
	"github.com/hr-system-api/internal/handler"
	"github.com/hr-system-api/internal/policy"
	"github.com/hr-system-api/internal/repository"
	"github.com/hr-system-api/internal/service"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations
var embedMigrations embed.FS

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := runMigrations(sqlDB); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Учётная запись администратора по умолчанию
	if err := seedAdminAccount(db); err != nil {
		logger.Error("failed to seed admin account", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	repos := repository.NewRepos(db)
	tx := repository.NewTransactor(db)

	// Таблица рангов и политика доступа
	ranks := domain.DefaultRoleRanks()
	pol := policy.New(ranks)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Инициализация сервисов
	authService := service.NewAuthService(repos.Accounts, tx, tokens)
	empService := service.NewEmployeeService(repos.Employees, repos.Departments, repos.Positions, repos.Accounts, tx, pol)
	deptService := service.NewDepartmentService(repos.Departments, tx)
	posService := service.NewPositionService(repos.Positions, tx)
	noticeService := service.NewNoticeService(repos.Notices, pol)
	attService := service.NewAttendanceService(repos.Attendance, repos.Employees)
	salService := service.NewSalaryService(repos.Salaries, repos.Employees)
	dashService := service.NewDashboardService(repos.Employees, repos.Departments, repos.Positions, repos.Attendance, repos.Notices)

	// Инициализация хендлеров
	authHandler := handler.NewAuthHandler(authService, logger)
	empHandler := handler.NewEmployeeHandler(empService, logger)
	deptHandler := handler.NewDepartmentHandler(deptService, logger)
	posHandler := handler.NewPositionHandler(posService, logger)
	noticeHandler := handler.NewNoticeHandler(noticeService, logger)
	recordHandler := handler.NewRecordHandler(attService, salService, logger)
	dashHandler := handler.NewDashboardHandler(dashService, logger)

	// Настройка роутера
	router := handler.NewRouter(tokens, pol, authHandler, empHandler, deptHandler, posHandler, noticeHandler, recordHandler, dashHandler, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting", slog.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for range 30 {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
		if err == nil {
			sqlDB, _ := db.DB()
			if sqlDB.Ping() == nil {
				return db, nil
			}
		}
		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database after 30 attempts: %w", err)
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// seedAdminAccount создаёт администратора по умолчанию, если его ещё нет
func seedAdminAccount(db *gorm.DB) error {
	accRepo := repository.NewAccountRepository(db)
	ctx := context.Background()

	_, err := accRepo.GetByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return accRepo.Create(ctx, &domain.Account{
		Username: "admin",
		Password: string(hash),
		Email:    "admin@company.com",
		Role:     domain.RoleAdmin,
	})
}
