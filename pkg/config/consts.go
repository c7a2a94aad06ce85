package config

const (
	// EnvPrefix is the envconfig prefix shared by every section.
	EnvPrefix = "AGRIMART"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv   = "AGRIMART_APP_ENV"
	EnvAppPort  = "AGRIMART_APP_PORT"
	EnvRedisURL = "AGRIMART_REDIS_URL"
)
