package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"ai-resume-parser/internal/config"
	"ai-resume-parser/internal/constants"
	"ai-resume-parser/internal/logger"
	"ai-resume-parser/internal/types"
)

// ErrCacheMiss 缓存未命中，包装底层的redis.Nil做一层隔离
var ErrCacheMiss = redis.Nil

// Redis 解析结果缓存
// 以文件内容MD5为键缓存整条解析记录，同一份文件的重复上传直接命中
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedis 创建Redis客户端并做一次连通性探测
func NewRedis(ctx context.Context, cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Address,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: time.Duration(cfg.DialTimeoutSec) * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis连接失败: %w", err)
	}

	ttl := constants.ParseCacheTTL
	if cfg.CacheTTLHours > 0 {
		ttl = time.Duration(cfg.CacheTTLHours) * time.Hour
	}

	return &Redis{
		client: client,
		ttl:    ttl,
		logger: logger.Logger.With().Str("component", "redis").Logger(),
	}, nil
}

// cacheKey 解析缓存键：固定前缀 + 文件内容MD5
func cacheKey(fileMD5 string) string {
	return constants.ParseCachePrefix + fileMD5
}

// GetCachedResult 按文件MD5取缓存的解析记录，未命中返回ErrCacheMiss
func (r *Redis) GetCachedResult(ctx context.Context, fileMD5 string) (*types.ResumeRecord, error) {
	raw, err := r.client.Get(ctx, cacheKey(fileMD5)).Bytes()
	if err != nil {
		return nil, err
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("缓存记录反序列化失败: %w", err)
	}
	return &record, nil
}

// CacheResult 缓存一条解析记录
// 缓存失败只记日志不回传——缓存层的故障不应影响解析主流程
func (r *Redis) CacheResult(ctx context.Context, fileMD5 string, record *types.ResumeRecord) {
	raw, err := json.Marshal(record)
	if err != nil {
		r.logger.Warn().Err(err).Msg("解析记录序列化失败，跳过缓存")
		return
	}
	if err := r.client.Set(ctx, cacheKey(fileMD5), raw, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Str("md5", fileMD5).Msg("写入解析缓存失败")
	}
}

// Close 关闭底层连接池
func (r *Redis) Close() error {
	return r.client.Close()
}
