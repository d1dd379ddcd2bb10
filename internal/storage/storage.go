package storage

import (
	"context"

	"github.com/rs/zerolog"

	"ai-resume-parser/internal/config"
	"ai-resume-parser/internal/logger"
)

// Storage 存储管理器，聚合所有可选的存储依赖
// MinIO和Redis都是可选项：未启用或初始化失败时对应字段为nil，
// 上层用 HasMinIO/HasRedis 判断后再调用
type Storage struct {
	// 对象存储（简历原件归档）
	MinIO *MinIO

	// 键值存储（解析结果缓存）
	Redis *Redis

	logger zerolog.Logger
}

// NewStorage 按配置初始化启用的存储组件
// 单个组件初始化失败降级为警告——解析服务本身不依赖任何外部存储
func NewStorage(ctx context.Context, cfg *config.Config) *Storage {
	s := &Storage{
		logger: logger.Logger.With().Str("component", "storage").Logger(),
	}

	if cfg.MinIO.Enabled {
		m, err := NewMinIO(&cfg.MinIO)
		if err != nil {
			s.logger.Warn().Err(err).Msg("MinIO初始化失败，归档功能关闭")
		} else {
			s.MinIO = m
			s.logger.Info().Str("endpoint", cfg.MinIO.Endpoint).Msg("MinIO客户端初始化成功")
		}
	}

	if cfg.Redis.Enabled {
		r, err := NewRedis(ctx, &cfg.Redis)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Redis初始化失败，解析缓存关闭")
		} else {
			s.Redis = r
			s.logger.Info().Str("addr", cfg.Redis.Address).Msg("Redis客户端初始化成功")
		}
	}

	return s
}

// HasMinIO 归档功能是否可用
func (s *Storage) HasMinIO() bool {
	return s != nil && s.MinIO != nil
}

// HasRedis 解析缓存是否可用
func (s *Storage) HasRedis() bool {
	return s != nil && s.Redis != nil
}

// Close 释放持有连接的组件
func (s *Storage) Close() {
	if s.HasRedis() {
		if err := s.Redis.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("关闭Redis连接失败")
		}
	}
}
