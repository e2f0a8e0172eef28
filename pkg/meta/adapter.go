package meta

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Config 数据库配置
type Config struct {
	// Path 是 SQLite 文件路径，例如 ~/.rememfile.db
	Path string
	// Verbose 为 true 时打开 GORM 的 Warn 级别日志
	Verbose bool
}

// DB 封装了 GORM 实例，作为存储层的入口
type DB struct {
	conn *gorm.DB
}

// Open 打开 (必要时创建) 本地数据库文件并迁移表结构
func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path not set")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	level := logger.Silent
	if cfg.Verbose {
		level = logger.Warn
	}

	// GORM 默认写 stdout，这里改到 stderr，stdout 只留给结果行
	gormLogger := logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open hash database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	// 单进程单连接，SQLite 本身只有一把写锁
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := NewWithConn(conn)
	if err := db.AutoMigrate(&HashEntry{}, &Metadata{}); err != nil {
		return nil, fmt.Errorf("auto migration failed: %w", err)
	}
	if err := db.stampCreated(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// NewWithConn 允许使用现有的 GORM 连接初始化 DB。
// 单元测试用它注入内存 SQLite。
func NewWithConn(conn *gorm.DB) *DB {
	return &DB{conn: conn}
}

// AutoMigrate 自动迁移表结构
func (d *DB) AutoMigrate(models ...any) error {
	return d.conn.AutoMigrate(models...)
}

func (d *DB) GetConn() *gorm.DB {
	return d.conn
}

// Close 释放底层连接
func (d *DB) Close() error {
	sqlDB, err := d.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// stampCreated 只在第一次打开时写入 created_at
func (d *DB) stampCreated(ctx context.Context) error {
	err := d.conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&Metadata{Key: metaKeyCreatedAt, Value: nowString()}).Error
	if err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	return nil
}
