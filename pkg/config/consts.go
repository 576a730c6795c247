package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "soundreel"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv                 = "SOUNDREEL_APP_ENV"
	EnvPort                   = "SOUNDREEL_APP_PORT"
	EnvDBDSN                  = "SOUNDREEL_DB_DSN"
	EnvDBHost                 = "SOUNDREEL_DB_HOST"
	EnvDBUser                 = "SOUNDREEL_DB_USER"
	EnvDBName                 = "SOUNDREEL_DB_NAME"
	EnvRedisURL               = "SOUNDREEL_REDIS_URL"
	EnvJWTSecret              = "SOUNDREEL_JWT_SECRET"
	EnvJWTIssuer              = "SOUNDREEL_JWT_ISSUER"
	EnvJWTExpMins             = "SOUNDREEL_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "SOUNDREEL_REFRESH_TOKEN_TTL_MINUTES"
	EnvGCPProjectID           = "SOUNDREEL_GCP_PROJECT_ID"
	EnvGCSBucket              = "SOUNDREEL_GCS_BUCKET_NAME"
	EnvGCSDownloadExpiry      = "SOUNDREEL_GCS_DOWNLOAD_URL_EXPIRY"
	EnvGCSUploadExpiry        = "SOUNDREEL_GCS_UPLOAD_URL_EXPIRY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
