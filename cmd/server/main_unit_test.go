package main

import (
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wanderly.backend/internal/config"
	plog "wanderly.backend/pkg/logger"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origLoadDotenv := loadDotenv
	origLoadCfg := loadCfg
	origInitLog := initLog
	origInitRedis := initRedis
	origOpenDB := openDB
	origRunServer := runServer

	t.Cleanup(func() {
		loadDotenv = origLoadDotenv
		loadCfg = origLoadCfg
		initLog = origInitLog
		initRedis = origInitRedis
		openDB = origOpenDB
		runServer = origRunServer
	})
}

func baseTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: "18080",
			Env:  "development",
		},
		Database: config.DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "wanderly",
			SSLMode:  "disable",
		},
		Redis: config.RedisConfig{
			URL:      "redis://localhost:6379",
			Password: "",
		},
		JWT: config.JWTConfig{
			Secret:        "secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		},
		Platform: config.PlatformConfig{
			DefaultCommissionPercent: 15,
			MaxCommissionPercent:     100,
			WalletCurrency:           "NPR",
			BookingExpiryInterval:    time.Minute,
		},
	}
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return errors.New("redis down") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestRunMainProcess_DBOpenError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) { return nil, errors.New("db open failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected db open error")
	}
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)

	loadDotenv = func(...string) error { return nil }
	loadCfg = baseTestConfig
	initLog = plog.Init
	initRedis = func(string, string) error { return nil }
	openDB = func(string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open("file:main_server_err?mode=memory&cache=shared"), &gorm.Config{})
	}
	runServer = func(*gin.Engine, string) error { return errors.New("listen failed") }

	err := runMainProcess()
	if err == nil {
		t.Fatal("expected server run error")
	}
}
