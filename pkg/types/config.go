package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort  uint   `envconfig:"SERVER_PORT" default:"8080"`

	ReadTimeoutSec  uint `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Upstream NGO backend. Submissions are forwarded best-effort; the
	// service stays functional when this host is unreachable.
	APIBaseURL    string `envconfig:"API_BASE_URL" default:"https://orbosisngo-backend-1.onrender.com"`
	APITimeoutSec uint   `envconfig:"API_TIMEOUT_SEC" default:"10"`

	// Profile store backend: memory, sqlite, or redis.
	StoreDriver   string `envconfig:"STORE_DRIVER" default:"memory"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"orbosis.db"`
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`

	// Countdown shown after a successful registration before the client
	// is told to navigate to the dashboard.
	RedirectDelaySec int `envconfig:"REDIRECT_DELAY_SEC" default:"5"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
