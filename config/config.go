package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string

	// Project store: "gorm", "redis" or "memory"
	StoreBackend string
	DBDriver     string
	DBHost       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPort       string
	SQLitePath   string

	RedisAddr     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Generative API
	GenAIProvider string
	APIKey        string
	GeminiBaseURL string
	OpenAIBaseURL string
	GenAITimeout  time.Duration

	HandoffTTL   time.Duration
	IDStrategy   string
	CommentTZ    string
	AllowOrigins string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// RedisEnabled reports whether a redis host was configured. Without one the
// handoff slots live in process memory.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// CommentLocation resolves the timezone used to stamp comment dates.
func (c *Config) CommentLocation() *time.Location {
	if c.CommentTZ == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.CommentTZ)
	if err != nil {
		return time.Local
	}
	return loc
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		StoreBackend: getEnv("STORE_BACKEND", "gorm"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBHost:       os.Getenv("DB_HOST"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBPort:       getEnv("DB_PORT", "5432"),
		SQLitePath:   getEnv("SQLITE_PATH", "data/academy.db"),

		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		GenAIProvider: getEnv("GENAI_PROVIDER", "gemini"),
		APIKey:        apiKey,
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GenAITimeout:  getEnvAsDuration("GENAI_TIMEOUT", 0),

		HandoffTTL:   getEnvAsDuration("HANDOFF_TTL", 0),
		IDStrategy:   getEnv("ID_STRATEGY", "timestamp"),
		CommentTZ:    getEnv("COMMENT_TZ", "Europe/Moscow"),
		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:8080"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := time.ParseDuration(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
