package monitor

import (
	"time"

	goping "github.com/go-ping/ping"

	"servermon/internal/logger"
)

// pingHost 对主机做一次ICMP预检
// 纯粹的诊断信息：帮助区分"主机整个不可达"和"主机在线但端口不通"，
// 结果只进日志，不参与服务级别的状态判定
func (s *Scheduler) pingHost(name, ip string, timeout time.Duration) {
	pinger, err := goping.NewPinger(ip)
	if err != nil {
		logger.Warnf("主机 %q ICMP预检创建失败: %v", name, err)
		return
	}

	// Linux系统使用特权模式（ICMP）
	pinger.SetPrivileged(true)

	pinger.Count = 1
	pinger.Timeout = timeout

	if err := pinger.Run(); err != nil {
		logger.Warnf("主机 %q ICMP预检执行失败: %v", name, err)
		return
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv > 0 {
		logger.Infof("主机 %q ICMP可达 (延迟: %v)", name, stats.AvgRtt)
	} else {
		logger.Warnf("主机 %q ICMP不可达 (发送: %d, 接收: %d)",
			name, stats.PacketsSent, stats.PacketsRecv)
	}
}
