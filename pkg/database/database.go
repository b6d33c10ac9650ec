package database

import (
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/model"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "dsa_platform_backend/pkg/logger"
)

// InitDB 建立 MySQL 连接池，每个请求通过 WithContext 从池中获取连接
func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	applog.Log.Info("Database connection established",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName))
	return db, nil
}

// Migrate 按模型建表，包含唯一约束和外键
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Question{},
		&model.Explanation{},
		&model.UserProgress{},
		&model.Attempt{},
		&model.Bookmark{},
		&model.UserProfile{},
	)
	if err != nil {
		return err
	}

	applog.Log.Info("Database migration completed")
	return nil
}

// 默认专题目录
var defaultTopics = []model.Topic{
	{Slug: "intro", Name: "Introduction to DSA"},
	{Slug: "array", Name: "Arrays"},
	{Slug: "time-complexity", Name: "Time & Space Complexity"},
	{Slug: "searching", Name: "Searching"},
	{Slug: "sorting", Name: "Sorting"},
	{Slug: "basic-sorting", Name: "Basic Sorting Techniques"},
	{Slug: "advance", Name: "Advance Sorting"},
	{Slug: "char-arrays-strings", Name: "Char, Arrays & Strings"},
	{Slug: "basic-maths-pointers", Name: "Basic Maths & Pointers"},
	{Slug: "recursion", Name: "Recursion"},
	{Slug: "backtracking-dnc", Name: "Backtracking & Divide & Conquer"},
	{Slug: "linked-list", Name: "Linked Lists"},
	{Slug: "stack", Name: "Stack"},
	{Slug: "queue", Name: "Queue"},
	{Slug: "tree", Name: "Generic & Binary Trees"},
	{Slug: "bst", Name: "Binary Search Tree"},
	{Slug: "heap", Name: "Heaps"},
	{Slug: "maps-tries", Name: "Maps & Tries"},
	{Slug: "dynamic-programming", Name: "Dynamic Programming"},
	{Slug: "graph", Name: "Graphs"},
}

// Seed topics 表为空时写入默认专题
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Topic{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	topics := make([]model.Topic, len(defaultTopics))
	copy(topics, defaultTopics)
	if err := db.Create(&topics).Error; err != nil {
		return err
	}

	applog.Log.Info("Default topics seeded", zap.Int("count", len(topics)))
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
