package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"servermon/internal/config"
)

var initconfigCmd = &cobra.Command{
	Use:   "initconfig",
	Short: "生成默认配置文件",
	Long:  "在指定路径生成带注释的默认主机清单配置，已存在时不覆盖",
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(cfgFile); err == nil {
			fmt.Fprintf(os.Stderr, "配置文件已存在: %s\n", cfgFile)
			os.Exit(1)
		}

		if err := config.GenerateDefault(cfgFile); err != nil {
			fmt.Fprintf(os.Stderr, "生成配置失败: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("已生成: %s\n", cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(initconfigCmd)
}
