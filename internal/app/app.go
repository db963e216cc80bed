package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/locacare/backend/internal/config"
	"github.com/locacare/backend/internal/database"
	"github.com/locacare/backend/internal/handlers"
	"github.com/locacare/backend/internal/logger"
	"github.com/locacare/backend/internal/repository"
	"github.com/locacare/backend/internal/service"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	chairRepo := repository.NewChairRepository(db)
	planRepo := repository.NewPlanRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)

	userService := service.NewUserService(userRepo)
	partnerService := service.NewPartnerService(userRepo, cfg.DefaultRate)
	rentalService := service.NewRentalService(rentalRepo, clientRepo, planRepo)
	balanceService := service.NewBalanceService(balanceRepo, withdrawalRepo)
	clientService := service.NewClientService(clientRepo)
	chairService := service.NewChairService(chairRepo)
	planService := service.NewPlanService(planRepo)

	handler := handlers.NewHandler(
		userService, partnerService, rentalService, balanceService,
		clientService, chairService, planService, cfg.SecretKey,
	)

	r := handlers.NewRouter(handler, cfg.SecretKey, handlers.RouterOptions{
		IntakeRate:  rate.Limit(cfg.IntakeRate),
		IntakeBurst: cfg.IntakeBurst,
	})

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

func (a *App) Run() error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
