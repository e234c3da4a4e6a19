package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"servermon/internal/config"
	"servermon/internal/monitor"
)

// Document 一次运行的报告文档
type Document struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Summary     monitor.Summary       `json:"summary"`
	Results     []monitor.CheckResult `json:"results"`
}

// BuildDocument 构建报告文档
func BuildDocument(results []monitor.CheckResult) *Document {
	return &Document{
		GeneratedAt: time.Now(),
		Summary:     monitor.Summarize(results),
		Results:     results,
	}
}

// WriteJSON 将报告文档写入本地文件
func WriteJSON(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Uploader S3报告上传器
type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewUploader 创建S3上传器，凭证走AWS SDK默认链（环境变量/配置文件/IMDS）
func NewUploader(ctx context.Context, cfg config.ReportConfig) (*Uploader, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("未配置S3_BUCKET")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %w", err)
	}

	return &Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
	}, nil
}

// Upload 上传报告文档，返回对象Key
func (u *Uploader) Upload(ctx context.Context, doc *Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("序列化报告失败: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", u.prefix, doc.GeneratedAt.Format("20060102-150405"))

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("上传报告到S3失败: %w", err)
	}

	return key, nil
}
