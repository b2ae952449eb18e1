package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds the PostgreSQL connection and pool settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// CacheConfig selects and configures the key/value cache backend.
// Backend is "redis" or "memory"; memory keeps everything in-process.
type CacheConfig struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MemorySize    int
}

// MinIOConfig points at the bucket receiving report exports.
// An empty Endpoint disables exports.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig holds token signing and one-time code settings.
type AuthConfig struct {
	JWTSecret     string
	JWTExpiresSec int
	OTPTTLSec     int
	OTPLength     int
}

// NotifyConfig holds settings of the push/SMS notification sender.
// An empty SNSTopicARN selects the log-only sender.
type NotifyConfig struct {
	SNSTopicARN string
	AWSRegion   string
}

// CacheTTLConfig holds expiries of cached read models, in seconds.
type CacheTTLConfig struct {
	AccessDecisionSec int
	LayoutSec         int
}

// AppConfig is everything the api and stockctl binaries read from the
// environment. Secrets have no defaults.
type AppConfig struct {
	AppHost  string
	Port     string
	TimeZone string
	Debug    bool
	Database DatabaseConfig
	Cache    CacheConfig
	MinIO    MinIOConfig
	Auth     AuthConfig
	Notify   NotifyConfig
	TTL      CacheTTLConfig
}

// Location resolves TimeZone, falling back to UTC when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables. Both binaries import
// godotenv/autoload, so a local .env fills in whatever the environment lacks.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		TimeZone: getEnv("APP_TIMEZONE", "UTC"),
		Debug:    getEnvBool("APP_DEBUG", false),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Cache: CacheConfig{
			Backend:       getEnv("CACHE_BACKEND", "redis"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			MemorySize:    getEnvInt("CACHE_MEMORY_SIZE", 10000),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			JWTExpiresSec: getEnvInt("JWT_EXPIRES_SEC", 600),
			OTPTTLSec:     getEnvInt("OTP_TTL_SEC", 600),
			OTPLength:     getEnvInt("OTP_LENGTH", 6),
		},
		Notify: NotifyConfig{
			SNSTopicARN: getEnv("SNS_TOPIC_ARN", ""),
			AWSRegion:   getEnv("AWS_REGION", "us-east-1"),
		},
		TTL: CacheTTLConfig{
			AccessDecisionSec: getEnvInt("ACCESS_CACHE_TTL_SEC", 86400),
			LayoutSec:         getEnvInt("LAYOUT_CACHE_TTL_SEC", 3600),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
