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
	JWT          JWTConfig
	Password     PasswordConfig
	GCP          GCPConfig
	GCS          GCSConfig
	Media        MediaConfig
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
	Env          string `envconfig:"SOUNDREEL_APP_ENV" required:"true"`
	Port         string `envconfig:"SOUNDREEL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SOUNDREEL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SOUNDREEL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SOUNDREEL_DB_DSN"`
	Driver string `envconfig:"SOUNDREEL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SOUNDREEL_DB_HOST"`
	LegacyPort     int    `envconfig:"SOUNDREEL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SOUNDREEL_DB_USER"`
	LegacyPassword string `envconfig:"SOUNDREEL_DB_PASSWORD"`
	LegacyName     string `envconfig:"SOUNDREEL_DB_NAME"`
	LegacySSLMode  string `envconfig:"SOUNDREEL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SOUNDREEL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SOUNDREEL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SOUNDREEL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SOUNDREEL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SOUNDREEL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SOUNDREEL_REDIS_ADDR"`
	Password     string        `envconfig:"SOUNDREEL_REDIS_PASSWORD"`
	DB           int           `envconfig:"SOUNDREEL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SOUNDREEL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SOUNDREEL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SOUNDREEL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SOUNDREEL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SOUNDREEL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"SOUNDREEL_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"SOUNDREEL_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"SOUNDREEL_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"SOUNDREEL_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SOUNDREEL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SOUNDREEL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SOUNDREEL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SOUNDREEL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SOUNDREEL_ARGON_KEY_LEN" default:"32"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"SOUNDREEL_GCP_PROJECT_ID" required:"true"`
	CredentialsJSON        string `envconfig:"SOUNDREEL_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"SOUNDREEL_GOOGLE_APPLICATION_CREDENTIALS"`
}

type GCSConfig struct {
	BucketName string `envconfig:"SOUNDREEL_GCS_BUCKET_NAME" required:"true"`
	// DownloadURLExpiry bounds every signed read URL handed to the panel.
	DownloadURLExpiry time.Duration `envconfig:"SOUNDREEL_GCS_DOWNLOAD_URL_EXPIRY" default:"5m"`
	UploadURLExpiry   time.Duration `envconfig:"SOUNDREEL_GCS_UPLOAD_URL_EXPIRY" default:"15m"`
}

type MediaConfig struct {
	MaxUploadMB int `envconfig:"SOUNDREEL_MAX_UPLOAD_MB" default:"50"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SOUNDREEL_AUTO_MIGRATE" default:"false"`
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
