package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	DataFile       string
	UploadDir      string
	PublicBaseURL  string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	UploadRPS      int
	MaxUploadBytes int64
}

func Load() Config {
	_ = godotenv.Load() // best-effort; absence of .env is fine

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		DataFile:       env("DATA_FILE", "data/hotels.json"),
		UploadDir:      env("UPLOAD_DIR", "uploads"),
		PublicBaseURL:  env("PUBLIC_BASE_URL", "http://localhost:8080"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		UploadRPS:      atoi("UPLOAD_RPS", 20),
		MaxUploadBytes: int64(atoi("MAX_UPLOAD_BYTES", 10<<20)),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
