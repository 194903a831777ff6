package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wanderly.backend/internal/config"
	"wanderly.backend/internal/infrastructure/jobs"
	"wanderly.backend/internal/infrastructure/repositories"
	"wanderly.backend/internal/interfaces/http/handlers"
	"wanderly.backend/internal/interfaces/http/middleware"
	"wanderly.backend/internal/usecases"
	"wanderly.backend/pkg/jwt"
	"wanderly.backend/pkg/logger"
	"wanderly.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewGuideProfileRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	kycRepo := repositories.NewKYCRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	guideUsecase := usecases.NewGuideUsecase(profileRepo, userRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, profileRepo)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, uow, cfg.Platform.WalletCurrency)
	settlementUsecase := usecases.NewSettlementUsecase(
		bookingRepo,
		walletRepo,
		uow,
		cfg.Platform.DefaultCommissionPercent,
		cfg.Platform.MaxCommissionPercent,
		cfg.Platform.WalletCurrency,
	)
	kycUsecase := usecases.NewKYCUsecase(kycRepo, profileRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	guideHandler := handlers.NewGuideHandler(guideUsecase)
	bookingHandler := handlers.NewBookingHandler(bookingUsecase, settlementUsecase)
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	kycHandler := handlers.NewKYCHandler(kycUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewBookingExpiryJob(bookingRepo, cfg.Platform.BookingExpiryInterval)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	configureMethodNotAllowed(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:    authHandler,
		guideHandler:   guideHandler,
		bookingHandler: bookingHandler,
		walletHandler:  walletHandler,
		kycHandler:     kycHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	log.Printf("🚀 Wanderly Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
