package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	AI         AIConfig
	Alert      AlertConfig      `mapstructure:"alert"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// AlertConfig cấu hình gửi mail cảnh báo cho giáo viên tư vấn
type AlertConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
}

// ModerationConfig các ngưỡng rủi ro là chính sách tư vấn, không phải hằng số cứng
type ModerationConfig struct {
	AlertThreshold  int `mapstructure:"alert_threshold"`
	HighThreshold   int `mapstructure:"high_threshold"`
	MediumThreshold int `mapstructure:"medium_threshold"`
}

type AdminConfig struct {
	PasswordHash string        `mapstructure:"password_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenExpire  time.Duration `mapstructure:"token_expire_hours"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("EMO_BUDDY")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// AI (Groq hoặc endpoint tương thích OpenAI)
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "GROQ_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Mail cảnh báo
	viper.BindEnv("alert.smtp_host", "ALERT_SMTP_HOST")
	viper.BindEnv("alert.smtp_port", "ALERT_SMTP_PORT")
	viper.BindEnv("alert.username", "ALERT_SMTP_USER")
	viper.BindEnv("alert.password", "ALERT_SMTP_PASSWORD")
	viper.BindEnv("alert.from", "ALERT_FROM")
	viper.BindEnv("alert.to", "ALERT_TO")

	// Dashboard admin
	viper.BindEnv("admin.password_hash", "ADMIN_PASSWORD_HASH")
	viper.BindEnv("admin.jwt_secret", "ADMIN_JWT_SECRET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Ngưỡng mặc định nếu file cấu hình không khai báo
	viper.SetDefault("moderation.alert_threshold", 60)
	viper.SetDefault("moderation.high_threshold", 70)
	viper.SetDefault("moderation.medium_threshold", 40)
	viper.SetDefault("admin.token_expire_hours", 12)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Admin.TokenExpire = cfg.Admin.TokenExpire * time.Hour

	// Chế độ release bắt buộc secret đủ mạnh
	if cfg.Server.Mode == "release" && len(cfg.Admin.JWTSecret) < 32 {
		return nil, fmt.Errorf("admin JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.Admin.JWTSecret))
	}

	return &cfg, nil
}
