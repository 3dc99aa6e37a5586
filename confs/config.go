package confs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

// Config holds every runtime setting of the tracker. It is built once in main
// and handed to the packages that need it.
type Config struct {
	Port string

	DBDriver   string
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	MongoURI     string
	MongoDB      string
	MongoTimeout time.Duration

	UserCacheSize int

	StaticDir string
	ViewsDir  string
	GinMode   string
}

// LoadConfig loads environment variables from a .env file if present
// and returns the resulting configuration.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return FromEnv(), nil
}

// FromEnv reads the configuration from the current process environment.
func FromEnv() *Config {
	return &Config{
		Port: GetEnvAsString("PORT", "3000"),

		DBDriver:   GetEnvAsString("DB_DRIVER", DriverPostgres),
		DBURL:      os.Getenv("DB_URL"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: GetEnvAsString("SQLITE_PATH", "tracker.db"),

		MongoURI:     GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      GetEnvAsString("MONGO_DB", "exercise-tracker"),
		MongoTimeout: GetEnvAsDuration("MONGO_TIMEOUT", 10*time.Second),

		UserCacheSize: GetEnvAsInt("USER_CACHE_SIZE", 1024),

		StaticDir: GetEnvAsString("STATIC_DIR", "public"),
		ViewsDir:  GetEnvAsString("VIEWS_DIR", "views"),
		GinMode:   os.Getenv("GIN_MODE"),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
