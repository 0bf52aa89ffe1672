package config

// EnvPrefix is passed to envconfig; individual fields carry full names so the
// prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv    = "WASHDESK_APP_ENV"
	EnvPort      = "WASHDESK_APP_PORT"
	EnvDBDSN     = "WASHDESK_DB_DSN"
	EnvDBHost    = "WASHDESK_DB_HOST"
	EnvDBUser    = "WASHDESK_DB_USER"
	EnvDBName    = "WASHDESK_DB_NAME"
	EnvRedisURL  = "WASHDESK_REDIS_URL"
	EnvJWTSecret = "WASHDESK_JWT_SECRET"
	EnvJWTIssuer = "WASHDESK_JWT_ISSUER"
	EnvMasterPin = "WASHDESK_MASTER_PIN"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
