package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"servermon/internal/monitor"
)

// WriteCSV 将结果导出为CSV文件
func WriteCSV(path string, results []monitor.CheckResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// 写入UTF-8 BOM，确保Excel等软件能正确识别
	if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// 写入表头
	if err := writer.Write([]string{
		"Name", "FQDN", "IP", "Service", "Port", "Protocol", "Status", "Detail",
	}); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			r.HostName,
			r.FQDN,
			r.IP,
			r.Service,
			strconv.Itoa(r.Port),
			r.Protocol,
			string(r.Status),
			r.Detail,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
