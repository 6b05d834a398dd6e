package main

import (
	"errors"
	"io/fs"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"campus_api/internal/api"
	"campus_api/internal/logger"
	"campus_api/internal/models"
	"campus_api/internal/repository"
	"campus_api/internal/service"
	"campus_api/internal/storage"
	"campus_api/pkg/config"
)

func main() {
	// 載入 .env（可選），其中的變數會被配置讀取
	var pathErr *fs.PathError
	if err := godotenv.Load(); err != nil && !errors.As(err, &pathErr) {
		log.Fatalf("Failed to load .env: %v", err)
	}

	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	zapLogger, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	// 初始化資料庫連接，整個程序共用
	db, err := storage.Open(cfg.DB)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.Professor{}, &models.Student{}, &models.LibraryMembership{}); err != nil {
		zapLogger.Fatal("Failed to auto migrate database", zap.Error(err))
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := api.NewRouter(services, api.Options{
		Logger:      zapLogger,
		Health:      db,
		Registry:    registry,
		CorsOrigins: cfg.Server.CorsOrigins,
	})

	zapLogger.Info("Server is running", zap.String("address", cfg.Server.Address), zap.String("env", cfg.App.Env))
	if err := r.Run(cfg.Server.Address); err != nil {
		zapLogger.Fatal("Failed to run server", zap.Error(err))
	}
}
