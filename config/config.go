package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultExternalIDPattern matches Discord snowflake IDs.
const DefaultExternalIDPattern = `^\d{17,19}$`

// Config holds every setting the service reads from the environment
type Config struct {
	Env  string
	Port string

	DBDriver      string
	DBDSN         string
	MigrationsDir string

	CacheType     string // empty disables caching
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserCacheTTL  time.Duration

	ExternalIDPattern string
	SchedulerInterval time.Duration

	ErrorLogFile       string
	ErrorLogMaxSizeMB  int
	ErrorLogMaxBackups int
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// Load reads the configuration. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: getenv("PORT", "5000"),

		DBDriver:      getenv("DB_DRIVER", "sqlite3"),
		DBDSN:         getenv("DB_DSN", "./canary.db?_foreign_keys=on"),
		MigrationsDir: getenv("MIGRATIONS_DIR", "./database/migrations"),

		CacheType:     os.Getenv("CACHE_TYPE"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getint("REDIS_DB", 0),
		UserCacheTTL:  getdur("USER_CACHE_TTL", 10*time.Minute),

		ExternalIDPattern: getenv("EXTERNAL_ID_PATTERN", DefaultExternalIDPattern),
		SchedulerInterval: getdur("SCHEDULER_INTERVAL", time.Minute),

		ErrorLogFile:       getenv("ERROR_LOG_FILE", "logs/error.log"),
		ErrorLogMaxSizeMB:  getint("ERROR_LOG_MAX_SIZE_MB", 10),
		ErrorLogMaxBackups: getint("ERROR_LOG_MAX_BACKUPS", 3),
	}
}
