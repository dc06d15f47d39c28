package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Session       SessionConfig       `mapstructure:"session"`
	CORS          CORSConfig          `mapstructure:"cors"`
	Log           LogConfig           `mapstructure:"log"`
	Seed          SeedConfig          `mapstructure:"seed"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// IsRelease 是否为生产模式
func (a *AppConfig) IsRelease() bool {
	return a.Mode == "release"
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 秒
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 秒
	ConnectTimeout  int    `mapstructure:"connect_timeout"`    // 秒
}

// DSN 返回PostgreSQL连接字符串
func (d *DatabaseConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
	if d.ConnectTimeout > 0 {
		dsn += fmt.Sprintf(" connect_timeout=%d", d.ConnectTimeout)
	}
	return dsn
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	CacheTTL int    `mapstructure:"cache_ttl"` // 秒
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// TTL 返回缓存过期时间
func (r *RedisConfig) TTL() time.Duration {
	if r.CacheTTL <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(r.CacheTTL) * time.Second
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint     string `mapstructure:"endpoint"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	UseSSL       bool   `mapstructure:"use_ssl"`
	AvatarBucket string `mapstructure:"avatar_bucket"`
	PublicURL    string `mapstructure:"public_url"` // 对外访问前缀，为空时由 endpoint 拼接
}

// KafkaConfig Kafka配置，brokers 为空时不启用事件发布
type KafkaConfig struct {
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
	GroupID string            `mapstructure:"group_id"`
}

// NewsEventsTopic 返回新闻事件 topic
func (k *KafkaConfig) NewsEventsTopic() string {
	if topic := k.Topics["news_events"]; topic != "" {
		return topic
	}
	return "brasileirao.news.events"
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts []string          `mapstructure:"hosts"`
	Index map[string]string `mapstructure:"index"`
}

// NewsIndex 返回新闻索引名
func (e *ElasticsearchConfig) NewsIndex() string {
	if name := e.Index["news"]; name != "" {
		return name
	}
	return "news"
}

// SessionConfig 会话配置
type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	CookieName string `mapstructure:"cookie_name"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	PruneMins  int    `mapstructure:"prune_interval_minutes"`
}

// MaxAge 返回会话有效期
func (s *SessionConfig) MaxAge() time.Duration {
	return time.Duration(s.MaxAgeDays) * 24 * time.Hour
}

// PruneInterval 返回过期会话清理间隔
func (s *SessionConfig) PruneInterval() time.Duration {
	if s.PruneMins <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(s.PruneMins) * time.Minute
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// SeedConfig 初始数据配置
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// 全局配置实例
var globalConfig *Config

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	// .env 可选，不存在时忽略
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 环境变量覆盖，例如 DATABASE_HOST、SESSION_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.IsRelease() && cfg.Session.Secret == defaultSessionSecret {
		return nil, fmt.Errorf("session.secret must be set in release mode")
	}

	globalConfig = &cfg

	return &cfg, nil
}

const defaultSessionSecret = "brasileirao-secret-key-change-in-production"

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.mode", "debug")
	v.SetDefault("app.port", 5000)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_idle_time", 30)
	v.SetDefault("database.connect_timeout", 2)
	v.SetDefault("session.secret", defaultSessionSecret)
	v.SetDefault("session.cookie_name", "brasileirao.sid")
	v.SetDefault("session.max_age_days", 30)
	v.SetDefault("minio.avatar_bucket", "avatars")
	v.SetDefault("kafka.group_id", "brasileirao-worker")
	v.SetDefault("seed.file", "configs/seed.yaml")
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}

// GetApp 获取应用配置
func GetApp() *AppConfig {
	return &Get().App
}

// GetKafka 获取Kafka配置
func GetKafka() *KafkaConfig {
	return &Get().Kafka
}

// GetElasticsearch 获取Elasticsearch配置
func GetElasticsearch() *ElasticsearchConfig {
	return &Get().Elasticsearch
}

// GetSession 获取会话配置
func GetSession() *SessionConfig {
	return &Get().Session
}
