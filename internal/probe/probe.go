package probe

import "time"

// Protocol 探测协议
type Protocol string

const (
	ProtocolTCP Protocol = "tcp"
	ProtocolUDP Protocol = "udp"
)

// Valid 判断协议是否受支持
func (p Protocol) Valid() bool {
	return p == ProtocolTCP || p == ProtocolUDP
}

// Outcome 单次连接探测结果
type Outcome struct {
	Protocol Protocol      // 探测协议
	Target   string        // 探测目标 (ip:port)
	Success  bool          // 是否成功
	Latency  time.Duration // 延迟
	Error    error         // 错误信息
}

// Checker 连接探测器接口
type Checker interface {
	// Check 对 ip:port 执行一次连接探测，ip 为空时直接返回失败
	Check(ip string, port int, timeout time.Duration) *Outcome
	// Protocol 返回探测协议
	Protocol() Protocol
}

// ForProtocol 根据协议返回对应的探测器，协议不受支持时返回 false
func ForProtocol(p Protocol) (Checker, bool) {
	switch p {
	case ProtocolTCP:
		return NewTCPChecker(), true
	case ProtocolUDP:
		return NewUDPChecker(), true
	default:
		return nil, false
	}
}
