package config

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchRemote 从远程URL拉取配置文档
func FetchRemote(url string) ([]byte, error) {
	// 创建HTTP客户端，设置超时
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	// 发起GET请求
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("请求远程配置失败: %w", err)
	}
	defer resp.Body.Close()

	// 检查HTTP状态码
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("远程配置HTTP状态错误: %d", resp.StatusCode)
	}

	// 读取响应体
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取远程配置失败: %w", err)
	}

	return body, nil
}
