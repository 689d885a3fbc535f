// Package config provides centralized default values for the Glowyn state service
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

// loadEnvFile applies .env overrides without clobbering the real environment.
func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			return
		}
		log.Println("Loaded configuration overrides from .env file")
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

// getEnvSecret is getEnvString without echoing the value.
func getEnvSecret(key string) string {
	val := os.Getenv(key)
	if val != "" {
		log.Printf("Config override: %s=<redacted>", key)
	}
	return val
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration
	GinMode            string

	// Storage
	StorageDriver    string // sqlite3 | libsql | mysql | pgx | dynamodb | memory
	SQLitePath       string
	TursoDatabaseURL string
	TursoAuthToken   string
	DatabaseURL      string // DSN for mysql and pgx
	DynamoDBTable    string
	AWSRegion        string

	// Database Pool
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int

	// Persistence write queue
	PersistMaxRetries    int
	PersistRetryInterval time.Duration
	PersistWriteTimeout  time.Duration

	// Media
	MediaDir       string
	S3BucketName   string
	PhotoSize      int
	PhotoQuality   int
	CameraEnabled  bool
	GalleryEnabled bool

	// Mock services
	AnalysisDelay       time.Duration
	RecommendationDelay time.Duration

	// Change stream
	StreamBufferSize        int
	StreamHeartbeatInterval time.Duration

	// Logging
	LogJSON      bool
	LogLevel     string
	LogToFile    bool
	LogDirectory string
)

func init() {
	Load()
}

// Load (re)reads every setting from the environment.
func Load() {
	loadEnvFile()

	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)
	GinMode = getEnvString("GIN_MODE", "debug")

	StorageDriver = getEnvString("STORAGE_DRIVER", "sqlite3")
	SQLitePath = getEnvString("SQLITE_PATH", "data/glowyn.db")
	TursoDatabaseURL = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvSecret("TURSO_AUTH_TOKEN")
	DatabaseURL = getEnvSecret("DATABASE_URL")
	DynamoDBTable = getEnvString("DYNAMODB_TABLE", "glowyn-state")
	AWSRegion = getEnvString("AWS_REGION", "us-east-1")

	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 4)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 2)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	PersistMaxRetries = getEnvInt("PERSIST_MAX_RETRIES", 3)
	PersistRetryInterval = getEnvDuration("PERSIST_RETRY_INTERVAL", 200*time.Millisecond)
	PersistWriteTimeout = getEnvDuration("PERSIST_WRITE_TIMEOUT", 5*time.Second)

	MediaDir = getEnvString("MEDIA_DIR", "media")
	S3BucketName = getEnvString("S3_BUCKET_NAME", "")
	PhotoSize = getEnvInt("PHOTO_SIZE", 1024)
	PhotoQuality = getEnvInt("PHOTO_QUALITY", 80)
	CameraEnabled = getEnvBool("CAMERA_ENABLED", true)
	GalleryEnabled = getEnvBool("GALLERY_ENABLED", true)

	AnalysisDelay = getEnvDuration("ANALYSIS_DELAY", 1500*time.Millisecond)
	RecommendationDelay = getEnvDuration("RECOMMENDATION_DELAY", 800*time.Millisecond)

	StreamBufferSize = getEnvInt("STREAM_BUFFER_SIZE", 16)
	StreamHeartbeatInterval = getEnvDuration("STREAM_HEARTBEAT_INTERVAL", 30*time.Second)

	LogJSON = getEnvBool("LOG_JSON", true)
	LogLevel = getEnvString("LOG_LEVEL", "info")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
}
