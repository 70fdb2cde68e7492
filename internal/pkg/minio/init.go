package minio

import (
	"Pulseboard/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// DatasetBucket 存放数据集 CSV 的存储桶
	DatasetBucket string
)

// Init 初始化 MinIO 客户端，仅在数据源为 minio 时调用
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		// 桶不存在时每张表都会被视为缺失，会话回退到示例数据
		log.Warn("dataset bucket not found, sessions will use sample data", "bucket", cfg.Bucket)
	}

	Client = client
	DatasetBucket = cfg.Bucket
	return nil
}
