package cmd

import (
	"fmt"
	"os"
	"sync"

	"servermon/internal/config"
	"servermon/internal/logger"
)

var (
	globalConfig *config.Config
	initOnce     sync.Once
	initError    error
)

// InitSystem 初始化系统（配置+日志），幂等
func InitSystem() error {
	initOnce.Do(func() {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("配置文件不存在，正在生成默认配置...")
				if err := config.GenerateDefault(cfgFile); err != nil {
					initError = fmt.Errorf("生成配置失败: %w", err)
					return
				}
				fmt.Printf("已生成: %s\n", cfgFile)
				fmt.Println("请填入主机清单后重新运行")
				os.Exit(0)
			}
			initError = err
			return
		}
		globalConfig = cfg

		// 根据配置决定是否启用文件日志
		if cfg.Log.Enabled {
			err = logger.Init(cfg.Log.Level, cfg.Log.Path, cfg.Log.MaxDays)
			if err != nil {
				initError = fmt.Errorf("日志初始化失败: %w", err)
				return
			}
			logger.Info("日志系统初始化成功（文件+控制台）")
		} else {
			logger.InitConsoleOnly(cfg.Log.Level)
		}

		logger.Infof("主机清单: %d 台主机", len(cfg.Hosts))
		logger.Debug("系统初始化完成")
	})
	return initError
}

// GetConfig 获取全局配置
func GetConfig() *config.Config {
	return globalConfig
}
