package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"servermon/internal/monitor"
)

var (
	okText    = color.New(color.FgGreen).SprintFunc()
	koText    = color.New(color.FgRed, color.Bold, color.ReverseVideo).SprintFunc()
	errorText = color.New(color.FgYellow, color.Bold).SprintFunc()
	redText   = color.New(color.FgRed).SprintFunc()
)

// RenderTable 渲染结果状态表
func RenderTable(w io.Writer, results []monitor.CheckResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "FQDN", "IP", "Service", "Port", "Protocol", "Status"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,   // Name
		tablewriter.ALIGN_LEFT,   // FQDN
		tablewriter.ALIGN_RIGHT,  // IP
		tablewriter.ALIGN_LEFT,   // Service
		tablewriter.ALIGN_RIGHT,  // Port
		tablewriter.ALIGN_CENTER, // Protocol
		tablewriter.ALIGN_CENTER, // Status
	})

	for _, r := range results {
		table.Append([]string{
			r.HostName,
			r.FQDN,
			r.IP,
			r.Service,
			strconv.Itoa(r.Port),
			r.Protocol,
			statusText(r.Status),
		})
	}

	table.Render()
}

// RenderDetails 输出未能探测项的错误说明（红色）
func RenderDetails(w io.Writer, results []monitor.CheckResult) {
	for _, r := range results {
		if r.Status == monitor.StatusError && r.Detail != "" {
			fmt.Fprintln(w, redText(fmt.Sprintf("Error: %s/%s: %s", r.HostName, r.Service, r.Detail)))
		}
	}
}

func statusText(s monitor.Status) string {
	switch s {
	case monitor.StatusOK:
		return okText("OK")
	case monitor.StatusKO:
		return koText("KO")
	default:
		return errorText("ERROR")
	}
}
