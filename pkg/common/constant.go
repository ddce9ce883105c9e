package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyHomeDBType string = "HOME_DB_TYPE"
	EnvKeyHomeDbPath string = "HOME_DB_PATH"

	EnvKeyHomeHttpHostPort string = "HOME_HTTP_HOST_PORT"

	EnvKeyHomeJwtSecret string = "HOME_JWT_SECRET"

	EnvKeyHomeDefaultRate  string = "HOME_DEFAULT_RATE"
	EnvKeyHomeDefaultBurst string = "HOME_DEFAULT_BURST"

	EnvKeyGeminiApiKey string = "GEMINI_API_KEY"

	LoggerNameHomeCore          string = "home_core"
	LoggerNameRestfulServer     string = "restful_server"
	LoggerFieldHomeCategory     string = "category"
	LoggerCategoryHomeDevice    string = "device"
	LoggerCategoryHomeAction    string = "action"
	LoggerCategoryHomeAudit     string = "audit"
	LoggerCategoryHomeUser      string = "user"
	LoggerCategoryHomeInterpret string = "interpreter"
)
