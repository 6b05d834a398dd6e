package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campus_api/pkg/config"
)

// Database 包裝 gorm 連線，整個程序共用一個實例
type Database struct {
	*gorm.DB
}

// Open 依配置中的 driver 建立資料庫連線
func Open(cfg config.DBConfig) (*Database, error) {
	switch cfg.Driver {
	case "postgres", "":
		return NewPostgresDB(cfg)
	case "sqlite":
		return NewSQLiteDB(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// 讓方言把唯一鍵、外鍵錯誤轉成 gorm.ErrDuplicatedKey 等
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

func (db *Database) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping 檢查資料庫是否可用
func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AutoMigrate 自動遷移資料庫結構
func (db *Database) AutoMigrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}
