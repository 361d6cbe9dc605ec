package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Cloudinary    CloudinaryConfig
	Contact       ContactConfig
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
	Env          string   `envconfig:"WEAVEMART_APP_ENV" required:"true"`
	Port         string   `envconfig:"WEAVEMART_APP_PORT" required:"true"`
	LogLevel     string   `envconfig:"WEAVEMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"WEAVEMART_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"WEAVEMART_CORS_ORIGINS" default:"http://localhost:3000"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"WEAVEMART_DB_DSN"`
	Driver string `envconfig:"WEAVEMART_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"WEAVEMART_DB_HOST"`
	LegacyPort     int    `envconfig:"WEAVEMART_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"WEAVEMART_DB_USER"`
	LegacyPassword string `envconfig:"WEAVEMART_DB_PASSWORD"`
	LegacyName     string `envconfig:"WEAVEMART_DB_NAME"`
	LegacySSLMode  string `envconfig:"WEAVEMART_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"WEAVEMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"WEAVEMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"WEAVEMART_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"WEAVEMART_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"WEAVEMART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"WEAVEMART_REDIS_ADDR"`
	Password     string        `envconfig:"WEAVEMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"WEAVEMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"WEAVEMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"WEAVEMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"WEAVEMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"WEAVEMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"WEAVEMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"WEAVEMART_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"WEAVEMART_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"WEAVEMART_JWT_EXPIRATION_MINUTES" default:"1440"`
	RefreshTokenTTLMinutes int    `envconfig:"WEAVEMART_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
	ResetTokenTTLMinutes   int    `envconfig:"WEAVEMART_RESET_TOKEN_TTL_MINUTES" default:"60"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

// ResetTokenTTL returns the password reset token TTL.
func (j JWTConfig) ResetTokenTTL() time.Duration {
	if j.ResetTokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ResetTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"WEAVEMART_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"WEAVEMART_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"WEAVEMART_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"WEAVEMART_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"WEAVEMART_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow       time.Duration `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit   int           `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit      int           `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow      time.Duration `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit  int           `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit     int           `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
	ContactWindow     time.Duration `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_CONTACT_WINDOW" default:"5m"`
	ContactIPLimit    int           `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_CONTACT_IP_LIMIT" default:"10"`
	ContactEmailLimit int           `envconfig:"WEAVEMART_AUTH_RATE_LIMIT_CONTACT_EMAIL_LIMIT" default:"0"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"WEAVEMART_AUTO_MIGRATE" default:"false"`
}

type CloudinaryConfig struct {
	CloudName    string        `envconfig:"WEAVEMART_CLOUDINARY_CLOUD_NAME" required:"true"`
	APIKey       string        `envconfig:"WEAVEMART_CLOUDINARY_API_KEY" required:"true"`
	APISecret    string        `envconfig:"WEAVEMART_CLOUDINARY_API_SECRET" required:"true"`
	UploadFolder string        `envconfig:"WEAVEMART_CLOUDINARY_UPLOAD_FOLDER" default:"products"`
	BaseURL      string        `envconfig:"WEAVEMART_CLOUDINARY_BASE_URL" default:"https://api.cloudinary.com"`
	Timeout      time.Duration `envconfig:"WEAVEMART_CLOUDINARY_TIMEOUT" default:"30s"`
}

type ContactConfig struct {
	PageSize int `envconfig:"WEAVEMART_CONTACT_PAGE_SIZE" default:"50"`
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
