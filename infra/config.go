package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings read from the environment.
type Config struct {
	Env         string
	Port        string
	LogLevel    string
	AutoMigrate bool

	DBDriver          string
	DBDSN             string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Env:         getEnv("ENV", "dev"),
		Port:        getEnv("PORT", "3000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", false),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBDSN:             os.Getenv("DB_DSN"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "plantie"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// DSN returns DB_DSN when set, otherwise a driver specific DSN built from
// the individual DB_* variables.
func (c *Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}

	switch c.DBDriver {
	case "mysql":
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, port, c.DBName)
	case "postgres":
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		// sslmode=require in production only
		sslmode := "disable"
		if c.IsProd() {
			sslmode = "require"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s connect_timeout=10",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port, sslmode)
	default:
		return c.DBName + ".db"
	}
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
