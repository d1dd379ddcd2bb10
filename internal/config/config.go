package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Host string `yaml:"host"` // 监听地址，默认 127.0.0.1
	Port int    `yaml:"port"` // 监听端口，默认 8080
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json 或 pretty
	TimeFormat   string `yaml:"time_format"`   // 时间戳格式
	ReportCaller bool   `yaml:"report_caller"` // 是否记录调用位置
}

// ParserConfig 解析管线配置
type ParserConfig struct {
	// DefaultPhoneRegion 10位手机号校验时假定的默认地区码（ISO 3166-1 alpha-2）
	DefaultPhoneRegion string `yaml:"default_phone_region"`
	// ValidateLocations 地理位置的网络校验开关
	// 该开关被接受但默认关闭；核心永远不做网络校验，开启时只会记一条警告
	ValidateLocations bool `yaml:"validate_locations"`
}

// MinIOConfig 原始简历归档存储配置（可选）
type MinIOConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl"`
	OriginalsBucket string `yaml:"originals_bucket"` // 原始简历桶
	Location        string `yaml:"location"`         // 桶所在区域
}

// RedisConfig 解析结果缓存配置（可选）
type RedisConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Address        string `yaml:"address"`
	Password       string `yaml:"password"`
	DB             int    `yaml:"db"`
	CacheTTLHours  int    `yaml:"cache_ttl_hours"`  // 解析结果缓存过期时间(小时)
	PoolSize       int    `yaml:"pool_size"`        // 连接池大小
	DialTimeoutSec int    `yaml:"dial_timeout_sec"` // 连接超时(秒)
}

// Config 应用程序配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Logger LoggerConfig `yaml:"logger"`
	Parser ParserConfig `yaml:"parser"`
	MinIO  MinIOConfig  `yaml:"minio"`
	Redis  RedisConfig  `yaml:"redis"`
}

// Default 返回填好默认值的配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
		Parser: ParserConfig{
			DefaultPhoneRegion: "IN",
		},
		Redis: RedisConfig{
			CacheTTLHours:  7 * 24,
			PoolSize:       10,
			DialTimeoutSec: 5,
		},
	}
}

// LoadConfig 加载配置文件并在缺省字段上应用默认值
// configPath 为空时在常见位置查找 config.yaml；找不到配置文件不算错误，
// 直接使用默认配置运行（核心解析不依赖任何外部服务）
func LoadConfig(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
		}
		if execPath, err := os.Executable(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(filepath.Dir(execPath), "config.yaml"))
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
		if configPath == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", configPath, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults 对Unmarshal后仍为零值的关键字段补默认值
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "127.0.0.1"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Parser.DefaultPhoneRegion == "" {
		c.Parser.DefaultPhoneRegion = "IN"
	}
	if c.Redis.CacheTTLHours == 0 {
		c.Redis.CacheTTLHours = 7 * 24
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.DialTimeoutSec == 0 {
		c.Redis.DialTimeoutSec = 5
	}
}
