package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth   AuthConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Tenant TenantConfig
}

type AuthConfig struct {
	// JWTSecret enables bearer-token protection of the API when non-empty.
	JWTSecret string `env:"AUTH_JWT_SECRET"`
	// BootstrapUser/BootstrapPass form an optional login accepted without a
	// database lookup, for first-run setups. Empty user disables it.
	BootstrapUser string `env:"AUTH_BOOTSTRAP_USER"`
	BootstrapPass string `env:"AUTH_BOOTSTRAP_PASS"`
}

type MongoConfig struct {
	URI string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	// AdminDatabase holds the shared operator accounts.
	AdminDatabase string `env:"MONGO_ADMIN_DB, default=barbeariapub-adm"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// CacheTTLSeconds bounds how stale a cached report may be.
	CacheTTLSeconds int `env:"REPORT_CACHE_TTL_SECONDS, default=60"`
}

type TenantConfig struct {
	// IDs is the ordered allow-list of tenant identifiers.
	IDs []string `env:"TENANT_IDS, default=barbearia01,barbearia02,barbearia03,barbearia04,barbearia05"`
	// DBPrefix prepends the tenant's two-digit suffix to form its database
	// name: barbearia01 -> barbeariapub-01.
	DBPrefix string `env:"TENANT_DB_PREFIX, default=barbeariapub-"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
