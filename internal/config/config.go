package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	AuthModeRemote = "remote"
	AuthModeJWT    = "jwt"

	DefaultCompletionBaseURL = "https://api.openai.com/v1"
	DefaultCompletionModel   = "gpt-4"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// auth provider
	AuthMode     string `toml:"auth_mode"`
	AuthAudience string `toml:"auth_audience"`
	// verified tokens are cached in redis for this long, 0 disables the cache
	AuthCacheTTLSeconds int `toml:"auth_cache_ttl_seconds"`
	// completion service
	CompletionBaseURL string `toml:"completion_base_url"`
	CompletionModel   string `toml:"completion_model"`
	// 0 disables rate limiting of the AI endpoints
	AIRequestsPerMin int `toml:"ai_requests_per_min"`
}

// Secrets are read from the process environment once, in main, and handed
// to the components that need them.
type Secrets struct {
	AuthURL        string // SUPABASE_URL
	ServiceRoleKey string // SUPABASE_SERVICE_ROLE_KEY
	JWTSecret      string // SUPABASE_JWT_SECRET
	OpenAIKey      string // OPENAI_API_KEY
	DatabaseURL    string // DATABASE_URL, overrides postgres_* from the config file
	DBPassword     string // POSTGRES_PASSWORD
	RedisPassword  string // REDIS_PASSWORD
	SentryDSN      string // SENTRY_DSN
}

func SecretsFromEnv(getenv func(string) string) Secrets {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Secrets{
		AuthURL:        strings.TrimSuffix(getenv("SUPABASE_URL"), "/"),
		ServiceRoleKey: getenv("SUPABASE_SERVICE_ROLE_KEY"),
		JWTSecret:      getenv("SUPABASE_JWT_SECRET"),
		OpenAIKey:      getenv("OPENAI_API_KEY"),
		DatabaseURL:    getenv("DATABASE_URL"),
		DBPassword:     getenv("POSTGRES_PASSWORD"),
		RedisPassword:  getenv("REDIS_PASSWORD"),
		SentryDSN:      getenv("SENTRY_DSN"),
	}
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", configPath, err)
	}
	return Parse(env, &t)
}

func LoadFromString(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return Parse(env, &t)
}

func Parse(env string, t *Toml) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if cfg.Port == 0 {
		cfg.Port = 9000
	}
	if cfg.AuthMode == "" {
		cfg.AuthMode = AuthModeRemote
	}
	if cfg.AuthMode != AuthModeRemote && cfg.AuthMode != AuthModeJWT {
		return nil, fmt.Errorf("invalid auth mode: %s", cfg.AuthMode)
	}
	if cfg.CompletionBaseURL == "" {
		cfg.CompletionBaseURL = DefaultCompletionBaseURL
	}
	if cfg.CompletionModel == "" {
		cfg.CompletionModel = DefaultCompletionModel
	}
	if cfg.AuthCacheTTLSeconds < 0 {
		return nil, fmt.Errorf("invalid auth_cache_ttl_seconds: %d", cfg.AuthCacheTTLSeconds)
	}
	if cfg.AIRequestsPerMin < 0 {
		return nil, fmt.Errorf("invalid ai_requests_per_min: %d", cfg.AIRequestsPerMin)
	}

	return cfg, nil
}
