package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Auth         AuthConfig
	Admin        AdminConfig
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
	Env          string `envconfig:"WASHDESK_APP_ENV" required:"true"`
	Port         string `envconfig:"WASHDESK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"WASHDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WASHDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WASHDESK_DB_DSN"`
	Driver string `envconfig:"WASHDESK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WASHDESK_DB_HOST"`
	LegacyPort     int    `envconfig:"WASHDESK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WASHDESK_DB_USER"`
	LegacyPassword string `envconfig:"WASHDESK_DB_PASSWORD"`
	LegacyName     string `envconfig:"WASHDESK_DB_NAME"`
	LegacySSLMode  string `envconfig:"WASHDESK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WASHDESK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WASHDESK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WASHDESK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WASHDESK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WASHDESK_REDIS_URL"`
	Address      string        `envconfig:"WASHDESK_REDIS_ADDR"`
	Password     string        `envconfig:"WASHDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"WASHDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WASHDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WASHDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WASHDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WASHDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WASHDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API can
// run without redis; record-create idempotency is then disabled.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type AuthConfig struct {
	JWTSecret string `envconfig:"WASHDESK_JWT_SECRET" required:"true"`
	JWTIssuer string `envconfig:"WASHDESK_JWT_ISSUER" required:"true"`
}

type AdminConfig struct {
	MasterPin string `envconfig:"WASHDESK_MASTER_PIN" required:"true"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WASHDESK_AUTO_MIGRATE" default:"false"`
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
