package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 主配置结构
type Config struct {
	Settings Settings `yaml:"config"` // 运行参数
	Hosts    []Host   `yaml:"hosts"`  // 主机清单（保持声明顺序）

	Log    LogConfig    `yaml:"-"` // 日志配置（仅来自环境变量）
	Report ReportConfig `yaml:"-"` // 报告导出配置（仅来自环境变量）
}

// Settings 运行参数
type Settings struct {
	Timeout float64 `yaml:"timeout"` // 每次探测的超时时间（秒），全局统一
	Workers int     `yaml:"workers"` // 并发探测数，1为串行（默认）
	Ping    bool    `yaml:"ping"`    // 是否对每台主机做ICMP预检（仅记录日志）
}

// Host 主机声明
type Host struct {
	Name     string      `yaml:"host"`
	IP       string      `yaml:"ip"`
	FQDN     string      `yaml:"fqdn"`
	Services ServiceList `yaml:"services"`
}

// Service 服务声明
type Service struct {
	Name     string `yaml:"-"`
	Port     int    `yaml:"port"`
	Protocol string `yaml:"protocol"`
}

// ServiceList 服务列表
// YAML里services是一个映射（服务名 -> 端口/协议），但结果表的顺序契约
// 要求保持声明顺序，所以这里通过 yaml.Node 逐项解码，而不是解到map
type ServiceList []Service

// UnmarshalYAML 按声明顺序解码服务映射
func (s *ServiceList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("services必须是映射 (第%d行)", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		var svc Service
		if err := valNode.Decode(&svc); err != nil {
			return fmt.Errorf("服务 %q 解析失败: %w", keyNode.Value, err)
		}
		svc.Name = keyNode.Value
		*s = append(*s, svc)
	}

	return nil
}

// LogConfig 日志配置
type LogConfig struct {
	Enabled bool
	Level   string
	Path    string
	MaxDays int
}

// ReportConfig 报告导出配置
type ReportConfig struct {
	S3Bucket string // 为空则不上传
	S3Prefix string
}

// Load 加载配置
// source 可以是本地文件路径，也可以是 http(s) URL（远程配置）
func Load(source string) (*Config, error) {
	var (
		data []byte
		err  error
	)

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = FetchRemote(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse 解析并校验配置文档
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置YAML失败: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 配置校验
// 只有会让整个运行失去意义的错误才在这里报出（超时非法、端口越界、
// 没有主机）。缺IP/FQDN、协议不认识属于逐项上报的运行时状况，不拦截
func (c *Config) Validate() error {
	if c.Settings.Timeout <= 0 {
		return fmt.Errorf("config.timeout必须为正数，当前为 %v", c.Settings.Timeout)
	}
	if c.Settings.Workers < 0 {
		return fmt.Errorf("config.workers不能为负数，当前为 %d", c.Settings.Workers)
	}
	if len(c.Hosts) == 0 {
		return fmt.Errorf("hosts不能为空")
	}

	for _, h := range c.Hosts {
		for _, svc := range h.Services {
			if svc.Port < 1 || svc.Port > 65535 {
				return fmt.Errorf("主机 %q 服务 %q 端口越界: %d", h.Name, svc.Name, svc.Port)
			}
		}
	}

	return nil
}

// applyEnv 应用 .env / 环境变量覆盖
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	// 运行参数覆盖
	if v := getEnvFloat("SERVERMON_TIMEOUT", 0); v > 0 {
		cfg.Settings.Timeout = v
	}
	if v := getEnvInt("SERVERMON_WORKERS", 0); v > 0 {
		cfg.Settings.Workers = v
	}

	// 日志配置
	cfg.Log.Enabled = getEnvBool("LOG_ENABLED", false)
	cfg.Log.Level = getEnvString("LOG_LEVEL", "info")
	cfg.Log.Path = getEnvString("LOG_PATH", "./logs/servermon.log")
	cfg.Log.MaxDays = getEnvInt("LOG_MAX_DAYS", 30)

	// 报告导出配置
	cfg.Report.S3Bucket = os.Getenv("S3_BUCKET")
	cfg.Report.S3Prefix = getEnvString("S3_PREFIX", "servermon")
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
