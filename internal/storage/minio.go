package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"ai-resume-parser/internal/config"
	"ai-resume-parser/internal/logger"
)

// MinIO 对象存储客户端封装，负责归档上传的简历原件
type MinIO struct {
	client *minio.Client
	cfg    *config.MinIOConfig
	logger zerolog.Logger
}

// NewMinIO 创建MinIO客户端并确保归档桶存在
func NewMinIO(cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	m := &MinIO{
		client: client,
		cfg:    cfg,
		logger: logger.Logger.With().Str("component", "minio").Logger(),
	}

	if err := m.ensureBucket(context.Background(), cfg.OriginalsBucket); err != nil {
		return nil, err
	}
	return m, nil
}

// ensureBucket 桶不存在则创建
func (m *MinIO) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("检查桶 %s 是否存在失败: %w", bucket, err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.cfg.Location}); err != nil {
			return fmt.Errorf("创建桶 %s 失败: %w", bucket, err)
		}
		m.logger.Info().Str("bucket", bucket).Msg("归档桶创建成功")
	}
	return nil
}

// ArchiveResume 把本地简历文件归档到对象存储
// 对象名用UUID加原始扩展名，避免同名文件互相覆盖；返回对象名
func (m *MinIO) ArchiveResume(ctx context.Context, localPath, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	objectName := uuid.New().String() + ext

	contentType := "application/octet-stream"
	if ext == ".pdf" {
		contentType = "application/pdf"
	}

	info, err := m.client.FPutObject(ctx, m.cfg.OriginalsBucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("归档简历 %s 失败: %w", originalFilename, err)
	}

	m.logger.Debug().
		Str("object", objectName).
		Int64("size", info.Size).
		Msg("简历原件归档完成")
	return objectName, nil
}
