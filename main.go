// @title DSA Platform 后端 API
// @version 1.0
// @description DSA 练习平台的后端服务器。

// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"dsa_platform_backend/internal/app"
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		application.Close(context.Background())
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
