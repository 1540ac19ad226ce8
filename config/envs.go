package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string        // Host IP for the server
	RESTPort        int           // Port for the REST API
	GinMode         string        // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel        string        // Minimum zap level: debug, info, warn, error
	DBHost          string        // Hostname or IP address for the database
	DBPort          int           // Port number for the database
	DBUser          string        // Username for the database
	DBPassword      string        // Password for the database
	DBName          string        // Name of the database
	RedisAddr       string        // host:port of the Redis server
	RedisPassword   string        // Password for Redis, empty for none
	RedisDB         int           // Redis logical database
	JWTSecret       string        // Secret key for JWT signing
	JWTIssuer       string        // Issuer claim for JWTs
	QueueTTLSeconds int           // Idle expiry of the job queue key; 0 never expires
	CacheTTLSeconds int           // Expiry of cached solutions
	Workers         int           // Jobs solved concurrently by the worker
	PollInterval    time.Duration // Delay between empty queue polls
	StepCost        int64         // Cost of one forward move
	TurnCost        int64         // Cost of one quarter turn
	MaxIterations   int           // Search pop budget; 0 means unlimited
	SearchTimeout   time.Duration // Deadline of one search; 0 disables it
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return load()
}

// load reads the configuration from the current process environment.
func load() Config {
	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		DBHost:          getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", "root"),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "pathfinder"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnvWithDefault("REDIS_PASS", ""),
		RedisDB:         getEnvAsIntWithDefault("REDIS_DB", 0),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-pathfinder"),
		QueueTTLSeconds: getEnvAsIntWithDefault("QUEUE_TTL_SECONDS", 0),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 86400),
		Workers:         getEnvAsIntWithDefault("WORKERS", 4),
		PollInterval:    getEnvAsDurationWithDefault("POLL_INTERVAL", 500*time.Millisecond),
		StepCost:        int64(getEnvAsIntWithDefault("STEP_COST", 1)),
		TurnCost:        int64(getEnvAsIntWithDefault("TURN_COST", 1000)),
		MaxIterations:   getEnvAsIntWithDefault("MAX_ITERATIONS", 10_000_000),
		SearchTimeout:   getEnvAsDurationWithDefault("SEARCH_TIMEOUT", 10*time.Second),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsDurationWithDefault retrieves the value of an environment variable as a time.Duration such as "500ms".
func getEnvAsDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a duration: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
