package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg，配置文件缺失时使用默认值
func LoadConfig() error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.SetEnvPrefix("PULSEBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	Cfg = &cfg

	return nil
}

// Default 返回只包含默认值的配置，测试与无配置文件启动时使用
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.currency", "₹")
	v.SetDefault("logstash.index", "logstash-pulseboard")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("minio.prefix", "datasets")
	v.SetDefault("dataset.source", "sample")
	v.SetDefault("dataset.dir", "./data")
	v.SetDefault("dataset.http.timeout", 10)
	v.SetDefault("session.store", "memory")
	v.SetDefault("session.cookie_name", "pulseboard_sid")
	v.SetDefault("session.ttl", 7200)
	v.SetDefault("upload.max_file_size", 5<<20)
	v.SetDefault("cron.session_sweep", "0 */5 * * * *")
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case "sample", "dir", "minio", "http":
	default:
		return fmt.Errorf("unknown dataset.source %q", c.Dataset.Source)
	}
	switch c.Session.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session.store %q", c.Session.Store)
	}
	if c.Session.Store == "redis" && c.Redis.Addr == "" {
		return errors.New("redis.addr is required when session.store is redis")
	}
	if c.Dataset.Source == "minio" && (c.MinIO.Endpoint == "" || c.MinIO.Bucket == "") {
		return errors.New("minio.endpoint and minio.bucket are required when dataset.source is minio")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	return nil
}
