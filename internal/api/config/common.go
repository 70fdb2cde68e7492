package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Redis    RedisConfig    `mapstructure:"redis"`
	MinIO    MinIOConfig    `mapstructure:"minio"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Session  SessionConfig  `mapstructure:"session"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Cron     CronConfig     `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"`
	Currency string `mapstructure:"currency"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// DatasetConfig 会话默认数据源
// Source 取值: sample | dir | minio | http
type DatasetConfig struct {
	Source string         `mapstructure:"source"`
	Dir    string         `mapstructure:"dir"`
	HTTP   DatasetHTTPURL `mapstructure:"http"`
}

// DatasetHTTPURL 四张表各自的下载地址
type DatasetHTTPURL struct {
	Influencers string `mapstructure:"influencers"`
	Posts       string `mapstructure:"posts"`
	Campaigns   string `mapstructure:"campaigns"`
	Payouts     string `mapstructure:"payouts"`
	Timeout     int    `mapstructure:"timeout"`
}

// SessionConfig 会话存储配置
// Store 取值: memory | redis
type SessionConfig struct {
	Store      string `mapstructure:"store"`
	CookieName string `mapstructure:"cookie_name"`
	TTL        int    `mapstructure:"ttl"`
}

// UploadConfig 上传限制
type UploadConfig struct {
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// CronConfig 定时任务配置
type CronConfig struct {
	SessionSweep string `mapstructure:"session_sweep"`
}
