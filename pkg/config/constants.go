package config

// EnvPrefix is passed to envconfig; individual fields carry full tags so it
// stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Canonical environment variable names, shared with tests.
const (
	EnvAppEnv     = "WEAVEMART_APP_ENV"
	EnvPort       = "WEAVEMART_APP_PORT"
	EnvDBDSN      = "WEAVEMART_DB_DSN"
	EnvDBHost     = "WEAVEMART_DB_HOST"
	EnvDBUser     = "WEAVEMART_DB_USER"
	EnvDBName     = "WEAVEMART_DB_NAME"
	EnvRedisURL   = "WEAVEMART_REDIS_URL"
	EnvJWTSecret  = "WEAVEMART_JWT_SECRET"
	EnvJWTIssuer  = "WEAVEMART_JWT_ISSUER"
	EnvJWTExpMins = "WEAVEMART_JWT_EXPIRATION_MINUTES"

	EnvCloudinaryCloudName = "WEAVEMART_CLOUDINARY_CLOUD_NAME"
	EnvCloudinaryAPIKey    = "WEAVEMART_CLOUDINARY_API_KEY"
	EnvCloudinaryAPISecret = "WEAVEMART_CLOUDINARY_API_SECRET"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
