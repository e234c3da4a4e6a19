package probe

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForProtocol(t *testing.T) {
	tests := []struct {
		protocol Protocol
		ok       bool
	}{
		{ProtocolTCP, true},
		{ProtocolUDP, true},
		{Protocol("icmp"), false},
		{Protocol(""), false},
		{Protocol("TCP"), false},
	}

	for _, tt := range tests {
		checker, ok := ForProtocol(tt.protocol)
		assert.Equal(t, tt.ok, ok, "protocol %q", tt.protocol)
		if ok {
			assert.Equal(t, tt.protocol, checker.Protocol())
		} else {
			assert.Nil(t, checker)
		}
	}
}

func TestProtocolValid(t *testing.T) {
	assert.True(t, ProtocolTCP.Valid())
	assert.True(t, ProtocolUDP.Valid())
	assert.False(t, Protocol("icmp").Valid())
}

func TestTCPCheckListener(t *testing.T) {
	// 本地起一个监听，探测应当成功
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port

	result := NewTCPChecker().Check("127.0.0.1", port, 2*time.Second)
	assert.True(t, result.Success)
	assert.NoError(t, result.Error)
	assert.Equal(t, ProtocolTCP, result.Protocol)
	assert.Greater(t, result.Latency, time.Duration(0))
}

func TestTCPCheckRefused(t *testing.T) {
	// 找一个确定没人监听的端口
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	start := time.Now()
	result := NewTCPChecker().Check("127.0.0.1", port, 2*time.Second)
	elapsed := time.Since(start)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
	// 拒绝连接应在超时之前返回，绝不能悬挂
	assert.Less(t, elapsed, 5*time.Second)
}

func TestTCPCheckNoIP(t *testing.T) {
	// 没有IP时不发起套接字操作，立即失败
	start := time.Now()
	result := NewTCPChecker().Check("", 80, 2*time.Second)
	elapsed := time.Since(start)

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
	assert.Empty(t, result.Target)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestUDPCheckLocal(t *testing.T) {
	// UDP的connect只验证本地可路由性，对回环地址总是"成功"，
	// 即使没有任何服务在监听。这是有意保留的弱信号语义
	result := NewUDPChecker().Check("127.0.0.1", 60999, 2*time.Second)
	assert.True(t, result.Success)
	assert.NoError(t, result.Error)
	assert.Equal(t, ProtocolUDP, result.Protocol)
}

func TestUDPCheckNoIP(t *testing.T) {
	result := NewUDPChecker().Check("", 53, 2*time.Second)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestTCPCheckInvalidAddress(t *testing.T) {
	// 非法地址只能产生失败结果，不允许panic或把错误抛出探测器
	result := NewTCPChecker().Check("not-an-ip!!", 80, 500*time.Millisecond)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}
