package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	App       AppConfig       `mapstructure:"app"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug, release, test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string { return fmt.Sprintf(":%d", s.Port) }

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, sqlite
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogLevel        string        `mapstructure:"log_level"` // silent, error, warn, info
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	MenuTTL  time.Duration `mapstructure:"menu_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, console
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	Insecure    bool    `mapstructure:"insecure"`
}

type SentryConfig struct {
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"` // 0 表示关闭
	Burst int     `mapstructure:"burst"`
}

type AppConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// Location 解析配置的时区，"今天" 以此计算
func (a AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}

const envPrefix = "COMEDOR"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "comedor.db")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_level", "warn")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.menu_ttl", 10*time.Minute)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4318")
	v.SetDefault("tracing.service_name", "comedor")
	v.SetDefault("tracing.sample_ratio", 1.0)
	v.SetDefault("tracing.insecure", true)

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)

	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "comedor.pedidos")

	v.SetDefault("ratelimit.rps", 0)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("app.timezone", "")
}

// Load 加载配置：默认值 < config.yaml < 环境变量 (COMEDOR_*)
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile 从指定文件加载配置；path 为空时按默认路径查找 config.yaml
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("invalid app.timezone: %w", err)
	}
	return nil
}
