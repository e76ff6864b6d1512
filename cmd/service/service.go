// @title        Drinks Ledger API
// @version      1.0
// @description  飲料庫存與消費帳本 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Grefendor/drinks/internal/cache"
	"github.com/Grefendor/drinks/internal/database"
	"github.com/Grefendor/drinks/internal/ledger"
	"github.com/Grefendor/drinks/internal/lookup"
	"github.com/Grefendor/drinks/internal/router"
	"github.com/Grefendor/drinks/internal/service"
	"github.com/Grefendor/drinks/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/Grefendor/drinks/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

type config struct {
	dbURL         string
	redisAddr     string
	redisPassword string
	redisIndex    int
	pinPepper     string
	workerCount   int
	lockTimeout   time.Duration
	listenAddr    string
	lookupURL     string
	maxAttempts   int
}

func loadConfig() (config, error) {
	cfg := config{
		workerCount: 1,
		lockTimeout: ledger.DefaultLockTimeout,
		listenAddr:  ":8080",
		lookupURL:   lookup.DefaultBaseURL,
		maxAttempts: 5,
	}

	cfg.dbURL = os.Getenv("DATABASE_URL")
	if cfg.dbURL == "" {
		return cfg, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	cfg.redisAddr = os.Getenv("REDIS_ADDR")
	if cfg.redisAddr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	cfg.redisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		cfg.redisIndex = n
	}

	if os.Getenv("JWT_SECRET") == "" {
		return cfg, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	cfg.pinPepper = os.Getenv("PIN_PEPPER")
	if cfg.pinPepper == "" {
		return cfg, fmt.Errorf("環境變數 PIN_PEPPER 未設定")
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return cfg, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.workerCount = c
	}
	if v := os.Getenv("LOCK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("無效的 LOCK_TIMEOUT: %q", v)
		}
		cfg.lockTimeout = d
	}
	if v := os.Getenv("LOGIN_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("無效的 LOGIN_MAX_ATTEMPTS: %q", v)
		}
		cfg.maxAttempts = n
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.listenAddr = v
	}
	if v := os.Getenv("LOOKUP_URL"); v != "" {
		cfg.lookupURL = v
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(cfg.redisAddr, cfg.redisPassword, cfg.redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(cfg.dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	svc, err := ledger.New(db, ledger.WithPinPepper(cfg.pinPepper), ledger.WithLockTimeout(cfg.lockTimeout))
	if err != nil {
		return fmt.Errorf("ledger 初始化失敗: %v", err)
	}

	wp := newWorkerPool(cfg.workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:      db,
		Cache:   redis,
		Ledger:  svc,
		Limiter: service.NewAttemptLimiter(redis, cfg.maxAttempts, 15*time.Minute),
		Lookup:  lookup.New(cfg.lookupURL, lookup.WithCache(redis)),
		Workers: wp,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.listenAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
