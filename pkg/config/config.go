package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	// App
	AppEnv          string
	ServerPort      string
	ShutdownTimeout time.Duration
	PublicBaseURL   string
	CORSOrigins     []string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	DBAutoMigrate  bool
	DBMaxOpenConns int
	DBMaxIdleConns int

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisEnabled  bool

	// JWT
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Storage
	StorageDriver      string
	UploadDir          string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           bool
	S3BucketName       string

	// RabbitMQ
	RabbitMQEnabled  bool
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// Rate limiting
	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration

	// Logging
	LogLevel  string
	LogPretty bool
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	env := strings.ToLower(v.GetString("APP_ENV"))
	production := env == "production"

	cfg := &Config{
		AppEnv:          env,
		ServerPort:      v.GetString("SERVER_PORT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		PublicBaseURL:   strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),

		DBDriver:       v.GetString("DB_DRIVER"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		DBPath:         v.GetString("DB_PATH"),
		DBAutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),

		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RedisEnabled:  v.GetBool("REDIS_ENABLED"),

		JWTSecret:       v.GetString("JWT_SECRET"),
		AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),

		StorageDriver:      v.GetString("STORAGE_DRIVER"),
		UploadDir:          v.GetString("UPLOAD_DIR"),
		AWSRegion:          v.GetString("AWS_REGION"),
		AWSAccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		AWSEndpoint:        v.GetString("AWS_ENDPOINT"),
		S3UseSSL:           v.GetBool("S3_USE_SSL"),
		S3BucketName:       v.GetString("S3_BUCKET_NAME"),

		RabbitMQEnabled:  v.GetBool("RABBITMQ_ENABLED"),
		RabbitMQHost:     v.GetString("RABBITMQ_HOST"),
		RabbitMQPort:     v.GetString("RABBITMQ_PORT"),
		RabbitMQUser:     v.GetString("RABBITMQ_USER"),
		RabbitMQPassword: v.GetString("RABBITMQ_PASSWORD"),

		RateLimitEnabled: production,
		RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow:  v.GetDuration("RATE_LIMIT_WINDOW"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogPretty: v.GetBool("LOG_PRETTY"),
	}

	// Rate limiting follows the environment unless set explicitly
	if v.IsSet("RATE_LIMIT_ENABLED") {
		cfg.RateLimitEnabled = v.GetBool("RATE_LIMIT_ENABLED")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitMQUser, c.RabbitMQPassword, c.RabbitMQHost, c.RabbitMQPort)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "sekor")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "sekor.db")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_ENABLED", true)

	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("ACCESS_TOKEN_TTL", "15m")
	v.SetDefault("REFRESH_TOKEN_TTL", "168h")

	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("AWS_ENDPOINT", "")
	v.SetDefault("S3_USE_SSL", true)
	v.SetDefault("S3_BUCKET_NAME", "sekor-media")

	v.SetDefault("RABBITMQ_ENABLED", false)
	v.SetDefault("RABBITMQ_HOST", "localhost")
	v.SetDefault("RABBITMQ_PORT", "5672")
	v.SetDefault("RABBITMQ_USER", "guest")
	v.SetDefault("RABBITMQ_PASSWORD", "guest")

	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
