package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servermon/internal/monitor"
)

func sampleResults() []monitor.CheckResult {
	return []monitor.CheckResult{
		{HostName: "web1", FQDN: "web1.example.com", IP: "192.0.2.1", Service: "http", Port: 80, Protocol: "tcp", Status: monitor.StatusOK},
		{HostName: "web1", FQDN: "web1.example.com", IP: "192.0.2.1", Service: "dns", Port: 53, Protocol: "udp", Status: monitor.StatusKO, Detail: "UDP连接失败: network unreachable"},
		{HostName: "bogus", FQDN: "nonexistent.invalid", Service: "ssh", Port: 22, Protocol: "tcp", Status: monitor.StatusError, Detail: "FQDN解析失败 (nonexistent.invalid): no such host"},
	}
}

func TestRenderTable(t *testing.T) {
	// 关闭着色，避免断言受转义序列影响
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	RenderTable(&buf, sampleResults())
	out := buf.String()

	for _, want := range []string{"NAME", "FQDN", "IP", "SERVICE", "PORT", "PROTOCOL", "STATUS"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "web1")
	assert.Contains(t, out, "192.0.2.1")
	assert.Contains(t, out, "80")
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "KO")
	assert.Contains(t, out, "ERROR")
}

func TestRenderDetails(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	RenderDetails(&buf, sampleResults())
	out := buf.String()

	// 只输出ERROR项的详情，KO的套接字错误不在此列
	assert.Contains(t, out, "bogus/ssh")
	assert.Contains(t, out, "nonexistent.invalid")
	assert.NotContains(t, out, "network unreachable")
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])

	out := string(data[3:])
	assert.Contains(t, out, "Name,FQDN,IP,Service,Port,Protocol,Status,Detail")
	assert.Contains(t, out, "web1,web1.example.com,192.0.2.1,http,80,tcp,OK,")
	assert.Contains(t, out, "ERROR")
}

func TestBuildDocumentAndWriteJSON(t *testing.T) {
	doc := BuildDocument(sampleResults())
	assert.False(t, doc.GeneratedAt.IsZero())
	assert.Equal(t, monitor.Summary{OK: 1, KO: 1, Error: 1}, doc.Summary)
	assert.Len(t, doc.Results, 3)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Document
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, doc.Summary, parsed.Summary)
	assert.Equal(t, "web1", parsed.Results[0].HostName)
	assert.Equal(t, monitor.StatusError, parsed.Results[2].Status)
}
