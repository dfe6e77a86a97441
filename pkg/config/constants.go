package config

const EnvPrefix = "zaiqa"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "ZAIQA_APP_ENV"
	EnvPort   = "ZAIQA_APP_PORT"

	EnvDBDSN  = "ZAIQA_DB_DSN"
	EnvDBHost = "ZAIQA_DB_HOST"
	EnvDBUser = "ZAIQA_DB_USER"
	EnvDBName = "ZAIQA_DB_NAME"

	EnvRedisURL = "ZAIQA_REDIS_URL"

	EnvEmailJSServiceID  = "ZAIQA_EMAILJS_SERVICE_ID"
	EnvEmailJSTemplateID = "ZAIQA_EMAILJS_TEMPLATE_ID"
	EnvEmailJSPublicKey  = "ZAIQA_EMAILJS_PUBLIC_KEY"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
