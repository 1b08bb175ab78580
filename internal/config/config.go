package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	MySQLHost     string
	MySQLUser     string
	MySQLPassword string
	MySQLDatabase string
	MySQLPort     int

	RedisAddr string
	RedisDB   int
	RedisPass string

	// MediaBackend selects the upload store: "disk" or "minio".
	MediaBackend string
	UploadDir    string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	WeatherAPIKey  string
	WeatherTimeout time.Duration

	SwaggerHost string
}

// Load builds Config from environment with local-development defaults.
// A .env file is honored when ENV=dev.
func Load() *Config {
	if os.Getenv("ENV") == "dev" {
		_ = godotenv.Load()
	}

	return &Config{
		ServerPort: getEnv("PORT", "5000"),

		MySQLHost:     getEnv("MYSQLHOST", "localhost"),
		MySQLUser:     getEnv("MYSQLUSER", "root"),
		MySQLPassword: os.Getenv("MYSQLPASSWORD"),
		MySQLDatabase: getEnv("MYSQLDATABASE", "agrivoice_db"),
		MySQLPort:     getEnvInt("MYSQLPORT", 3306),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		MediaBackend: getEnv("MEDIA_BACKEND", "disk"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "agrivoice-audio"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),

		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		WeatherTimeout: getEnvDuration("WEATHER_TIMEOUT", 10*time.Second),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

// MySQLDSN assembles the GORM MySQL connection string.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLPort, c.MySQLDatabase)
}

// Production reports whether the process runs against a managed database,
// mirroring the MYSQLHOST-based mode flag of the original deployment.
func (c *Config) Production() bool {
	return os.Getenv("MYSQLHOST") != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
