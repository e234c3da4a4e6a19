package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "servermon",
		Short: "服务器连通性批量检测工具",
		Long: `servermon是一个主机/服务连通性批量检测工具，
按配置清单对每个声明的服务做一次TCP/UDP连接探测，
并以状态表的形式汇总每项服务的可达性。`,
		Version: "1.0.0",
	}
)

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// 全局flags - 支持本地文件路径或HTTP(S) URL
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "hosts.yaml", "配置文件路径或URL (支持 http:// 或 https://)")
}

// GetConfigFile 获取配置文件路径
func GetConfigFile() string {
	return cfgFile
}
