package probe

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// TCPChecker TCP端口探测器
type TCPChecker struct{}

// NewTCPChecker 创建TCP探测器
func NewTCPChecker() *TCPChecker {
	return &TCPChecker{}
}

// Protocol 返回探测协议
func (c *TCPChecker) Protocol() Protocol {
	return ProtocolTCP
}

// Check 执行TCP端口探测
// 在超时时间内完成三次握手视为成功；超时、拒绝、不可达等
// 套接字层错误一律记录为失败，不向外传播
func (c *TCPChecker) Check(ip string, port int, timeout time.Duration) *Outcome {
	result := &Outcome{
		Protocol: ProtocolTCP,
	}

	// 没有IP时不发起套接字操作，直接失败
	if ip == "" {
		result.Error = fmt.Errorf("没有可用的IP地址")
		return result
	}

	result.Target = net.JoinHostPort(ip, strconv.Itoa(port))

	// 记录开始时间
	start := time.Now()

	// 尝试建立TCP连接
	conn, err := net.DialTimeout("tcp", result.Target, timeout)
	if err != nil {
		result.Error = fmt.Errorf("TCP连接失败: %w", err)
		return result
	}
	defer conn.Close()

	// 计算延迟
	result.Latency = time.Since(start)
	result.Success = true

	return result
}
