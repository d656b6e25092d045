package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv           string
	HTTPAddr         string
	MetricsAddr      string
	MySQLDSN         string
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	InboxBase        string
	InboxKey         string
	InboxRPS         int
	ResponderWorkers int
	QuoteTTL         time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real env vars win.
func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer env value")
		}
		return def
	}
	return Config{
		AppEnv:           env("APP_ENV", "prod"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
		MySQLDSN:         env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hostbot?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		InboxBase:        env("INBOX_BASE_URL", "http://localhost:8090/v1"),
		InboxKey:         env("INBOX_API_KEY", ""),
		InboxRPS:         atoi("INBOX_RPS", 5),
		ResponderWorkers: atoi("RESPONDER_WORKERS", 8),
		QuoteTTL:         time.Duration(atoi("QUOTE_TTL_SECONDS", 900)) * time.Second,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
