package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"servermon/internal/logger"
	"servermon/internal/monitor"
	"servermon/internal/report"
)

var (
	strictMode bool
	workers    int
	enablePing bool
	csvPath    string
	reportPath string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "执行一次连通性探测",
		Long: `按配置清单对所有主机的所有服务执行一次连通性探测，
输出每项服务的状态表。默认始终以0退出；--strict 模式下
只要有服务KO/ERROR就以1退出`,
		Run: func(cmd *cobra.Command, args []string) {
			// 初始化系统
			if err := InitSystem(); err != nil {
				fmt.Fprintf(os.Stderr, "系统初始化失败: %v\n", err)
				os.Exit(1)
			}

			cfg := GetConfig()

			// 命令行flag覆盖配置文件
			if cmd.Flags().Changed("workers") {
				cfg.Settings.Workers = workers
			}
			if cmd.Flags().Changed("ping") {
				cfg.Settings.Ping = enablePing
			}

			ctx := context.Background()

			// 执行探测
			scheduler := monitor.NewScheduler(cfg)
			results := scheduler.Run(ctx)

			// 输出状态表和错误详情
			report.RenderTable(os.Stdout, results)
			report.RenderDetails(os.Stderr, results)

			exportResults(ctx, results)

			// 退出码策略：默认保持0，--strict时反映探测结果
			if strictMode && !monitor.Summarize(results).AllOK() {
				os.Exit(1)
			}
		},
	}
)

// exportResults 按需导出CSV/JSON报告并上传S3
// 导出失败只记日志，不影响探测结果和退出码
func exportResults(ctx context.Context, results []monitor.CheckResult) {
	cfg := GetConfig()

	if csvPath != "" {
		if err := report.WriteCSV(csvPath, results); err != nil {
			logger.Errorf("导出CSV失败: %v", err)
		} else {
			logger.Infof("CSV已导出: %s", csvPath)
		}
	}

	if reportPath == "" && cfg.Report.S3Bucket == "" {
		return
	}

	doc := report.BuildDocument(results)

	if reportPath != "" {
		if err := report.WriteJSON(reportPath, doc); err != nil {
			logger.Errorf("导出JSON报告失败: %v", err)
		} else {
			logger.Infof("JSON报告已导出: %s", reportPath)
		}
	}

	if cfg.Report.S3Bucket != "" {
		uploader, err := report.NewUploader(ctx, cfg.Report)
		if err != nil {
			logger.Errorf("创建S3上传器失败: %v", err)
			return
		}
		key, err := uploader.Upload(ctx, doc)
		if err != nil {
			logger.Errorf("上传报告失败: %v", err)
			return
		}
		logger.Infof("报告已上传: s3://%s/%s", cfg.Report.S3Bucket, key)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVarP(&strictMode, "strict", "s", false, "有服务KO/ERROR时以非零退出码结束")
	checkCmd.Flags().IntVarP(&workers, "workers", "w", 1, "并发探测数（覆盖配置文件）")
	checkCmd.Flags().BoolVar(&enablePing, "ping", false, "对每台主机做ICMP预检（覆盖配置文件）")
	checkCmd.Flags().StringVar(&csvPath, "csv", "", "将结果导出为CSV文件")
	checkCmd.Flags().StringVar(&reportPath, "report", "", "将结果导出为JSON报告文件")
}
