package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "OOHDESK_DB_DSN"
	EnvDBHost = "OOHDESK_DB_HOST"
	EnvDBUser = "OOHDESK_DB_USER"
	EnvDBName = "OOHDESK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"OOHDESK_APP_ENV" required:"true"`
	Port         string `envconfig:"OOHDESK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"OOHDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"OOHDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"OOHDESK_DB_DSN"`
	Driver string `envconfig:"OOHDESK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"OOHDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"OOHDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"OOHDESK_DB_USER"`
	LegacyPassword string `envconfig:"OOHDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"OOHDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"OOHDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"OOHDESK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"OOHDESK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"OOHDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"OOHDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"OOHDESK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"OOHDESK_REDIS_ADDR"`
	Password     string        `envconfig:"OOHDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"OOHDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"OOHDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"OOHDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"OOHDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"OOHDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"OOHDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"OOHDESK_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"OOHDESK_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"OOHDESK_JWT_EXPIRATION_MINUTES" default:"480"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"OOHDESK_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"OOHDESK_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"OOHDESK_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"OOHDESK_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"OOHDESK_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"OOHDESK_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"OOHDESK_AUTO_MIGRATE" default:"false"`
	AllowSeed   bool `envconfig:"OOHDESK_ALLOW_SEED" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
