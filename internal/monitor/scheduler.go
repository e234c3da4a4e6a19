package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"servermon/internal/config"
	"servermon/internal/logger"
	"servermon/internal/probe"
	"servermon/internal/resolver"
)

// Scheduler 探测调度器
// 一次Run对应一次完整的清单遍历：每台主机解析一次地址，每个服务
// 探测一次，产出与声明顺序一致的结果列表
type Scheduler struct {
	cfg        *config.Config
	resolver   *resolver.Resolver
	checkerFor func(probe.Protocol) (probe.Checker, bool)
}

// NewScheduler 创建探测调度器
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		resolver:   resolver.New(),
		checkerFor: probe.ForProtocol,
	}
}

// job 一次待执行的服务探测
type job struct {
	index      int    // 结果槽位（保证输出顺序与声明顺序一致）
	ip         string // 解析出的IP，可为空
	resolveErr error  // 主机地址解析错误，探测失败时作为detail上报
	port       int
	protocol   probe.Protocol
	timeout    time.Duration
	base       CheckResult
}

// Run 执行一次完整探测
// 任何单台主机、单个服务的错误都只记录在对应的结果里，不中断运行；
// 返回的结果数严格等于清单里(主机,服务)对的总数
func (s *Scheduler) Run(ctx context.Context) []CheckResult {
	logger.Info("========== 开始探测 ==========")
	startTime := time.Now()

	timeout := time.Duration(s.cfg.Settings.Timeout * float64(time.Second))

	// 预分配结果槽位
	total := 0
	for _, h := range s.cfg.Hosts {
		total += len(h.Services)
	}
	results := make([]CheckResult, total)

	logger.Infof("共 %d 台主机 %d 个服务，超时 %v", len(s.cfg.Hosts), total, timeout)

	// 按声明顺序展开任务：每台主机先解析一次地址
	jobs := make([]job, 0, total)
	index := 0
	for _, host := range s.cfg.Hosts {
		ip, resolveErr := s.resolver.Resolve(ctx, host.IP, host.FQDN)
		if resolveErr != nil {
			logger.Errorf("✗ 主机 %q 地址解析失败: %v", host.Name, resolveErr)
		}

		// 可选的ICMP预检，只记录日志，不影响服务结果
		if s.cfg.Settings.Ping && ip != "" {
			s.pingHost(host.Name, ip, timeout)
		}

		for _, svc := range host.Services {
			jobs = append(jobs, job{
				index:      index,
				ip:         ip,
				resolveErr: resolveErr,
				port:       svc.Port,
				protocol:   probe.Protocol(svc.Protocol),
				timeout:    timeout,
				base: CheckResult{
					HostName: host.Name,
					FQDN:     host.FQDN,
					IP:       ip,
					Service:  svc.Name,
					Port:     svc.Port,
					Protocol: svc.Protocol,
				},
			})
			index++
		}
	}

	s.execute(ctx, jobs, results)

	duration := time.Since(startTime)
	summary := Summarize(results)
	logger.Infof("========== 探测完成 OK:%d KO:%d ERROR:%d (耗时: %v) ==========",
		summary.OK, summary.KO, summary.Error, duration)

	return results
}

// execute 执行探测任务
// workers<=1 时严格按声明顺序串行；否则用带权信号量限制并发数。
// 每个任务只写自己的槽位，结果顺序与完成顺序无关
func (s *Scheduler) execute(ctx context.Context, jobs []job, results []CheckResult) {
	workers := s.cfg.Settings.Workers
	if workers <= 1 {
		for _, j := range jobs {
			results[j.index] = s.probeOne(j)
		}
		return
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, j := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			// 上下文取消，剩余任务全部按未执行记录
			results[j.index] = s.skipped(j, err)
			continue
		}

		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			defer sem.Release(1)
			results[j.index] = s.probeOne(j)
		}(j)
	}

	wg.Wait()
}

// probeOne 执行一条(主机,服务)探测并生成结果
func (s *Scheduler) probeOne(j job) CheckResult {
	result := j.base

	// 协议校验失败不开套接字，直接记ERROR
	checker, ok := s.checkerFor(j.protocol)
	if !ok {
		result.Status = StatusError
		result.Detail = fmt.Sprintf("无效的协议: %s", j.protocol)
		logger.Errorf("✗ %s/%s 无效的协议: %s", result.HostName, result.Service, j.protocol)
		return result
	}

	outcome := checker.Check(j.ip, j.port, j.timeout)

	switch {
	case outcome.Success:
		result.Status = StatusOK
		logger.Infof("✓ %s/%s %s:%d/%s 正常 (延迟: %v)",
			result.HostName, result.Service, j.ip, j.port, j.protocol, outcome.Latency)
	case j.resolveErr != nil:
		// 地址没解析出来，探测根本无从发起
		result.Status = StatusError
		result.Detail = j.resolveErr.Error()
		logger.Warnf("✗ %s/%s 未探测: %v", result.HostName, result.Service, j.resolveErr)
	default:
		result.Status = StatusKO
		if outcome.Error != nil {
			result.Detail = outcome.Error.Error()
		}
		logger.Warnf("✗ %s/%s %s:%d/%s 失败: %v",
			result.HostName, result.Service, j.ip, j.port, j.protocol, outcome.Error)
	}

	return result
}

// skipped 生成未执行任务的结果
func (s *Scheduler) skipped(j job, err error) CheckResult {
	result := j.base
	result.Status = StatusError
	result.Detail = fmt.Sprintf("探测未执行: %v", err)
	return result
}
