package config

import (
	"os"
	"path/filepath"
)

// defaultConfigYAML 默认配置模板
const defaultConfigYAML = `# servermon 主机清单配置
config:
  # 每次探测的超时时间（秒）
  timeout: 2
  # 并发探测数，1为按声明顺序串行探测
  workers: 1
  # 是否对每台主机先做一次ICMP预检（结果仅记录日志）
  ping: false

hosts:
  - host: web1
    ip: 127.0.0.1
    services:
      http:
        port: 80
        protocol: tcp
      https:
        port: 443
        protocol: tcp
  - host: dns1
    fqdn: dns.example.com
    services:
      dns:
        port: 53
        protocol: udp
`

// GenerateDefault 生成默认配置文件
func GenerateDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
