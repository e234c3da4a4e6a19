package monitor

// Status 单项服务的探测状态
type Status string

const (
	StatusOK    Status = "OK"    // 连接成功
	StatusKO    Status = "KO"    // 发起了连接但失败/超时
	StatusError Status = "ERROR" // 因输入问题未能发起探测（协议非法、地址无法解析）
)

// CheckResult 一条(主机,服务)的探测结果，生成后不再修改
type CheckResult struct {
	HostName string `json:"name"`             // 主机名
	FQDN     string `json:"fqdn,omitempty"`   // 配置的FQDN（可为空）
	IP       string `json:"ip,omitempty"`     // 生效的IP（可为空）
	Service  string `json:"service"`          // 服务名
	Port     int    `json:"port"`             // 端口
	Protocol string `json:"protocol"`         // 协议
	Status   Status `json:"status"`           // 探测状态
	Detail   string `json:"detail,omitempty"` // KO/ERROR时的错误说明
}

// Summary 一次运行的汇总统计
type Summary struct {
	OK    int `json:"ok"`
	KO    int `json:"ko"`
	Error int `json:"error"`
}

// Summarize 统计各状态数量
func Summarize(results []CheckResult) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusOK:
			s.OK++
		case StatusKO:
			s.KO++
		default:
			s.Error++
		}
	}
	return s
}

// AllOK 是否全部服务可达
func (s Summary) AllOK() bool {
	return s.KO == 0 && s.Error == 0
}
