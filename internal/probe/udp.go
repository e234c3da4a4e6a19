package probe

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// UDPChecker UDP端口探测器
//
// UDP是无连接协议，这里的 connect 只绑定目标地址，验证本地路由
// 和即时的ICMP错误，并不能证明远端服务真的在监听。这是已知的
// 弱信号，保持与TCP的语义差异，不做应用层收发报文的"增强"。
type UDPChecker struct{}

// NewUDPChecker 创建UDP探测器
func NewUDPChecker() *UDPChecker {
	return &UDPChecker{}
}

// Protocol 返回探测协议
func (c *UDPChecker) Protocol() Protocol {
	return ProtocolUDP
}

// Check 执行UDP端口探测
func (c *UDPChecker) Check(ip string, port int, timeout time.Duration) *Outcome {
	result := &Outcome{
		Protocol: ProtocolUDP,
	}

	// 没有IP时不发起套接字操作，直接失败
	if ip == "" {
		result.Error = fmt.Errorf("没有可用的IP地址")
		return result
	}

	result.Target = net.JoinHostPort(ip, strconv.Itoa(port))

	// 记录开始时间
	start := time.Now()

	// 无连接的 connect，只验证本地可路由性
	conn, err := net.DialTimeout("udp", result.Target, timeout)
	if err != nil {
		result.Error = fmt.Errorf("UDP连接失败: %w", err)
		return result
	}
	defer conn.Close()

	// 计算延迟
	result.Latency = time.Since(start)
	result.Success = true

	return result
}
