package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// LLMConfig contains all text-generation backend settings.
//
// Providers lists the backends to register, in fallback priority order.
// API keys are deliberately not required here: a backend whose key is
// missing fails its own constructor and is skipped at startup. Startup
// only fails when no backend at all can be built.
type LLMConfig struct {
	Providers             []string `mapstructure:"providers" validate:"required,min=1,dive,oneof=gemini openai mock"`
	GeminiAPIKey          string   `mapstructure:"gemini_api_key"`
	GeminiModel           string   `mapstructure:"gemini_model" validate:"required"`
	OpenAIAPIKey          string   `mapstructure:"openai_api_key"`
	OpenAIModel           string   `mapstructure:"openai_model" validate:"required"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
	PromptVersion         int      `mapstructure:"prompt_version" validate:"required,gt=0"`
}
