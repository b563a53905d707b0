// Package config defines environment variable keys for configuration.
package config

//nolint:gosec // Environment variable keys are not credentials.
const (
	// Discord. The public key is required for serving; the app ID,
	// token, and guild ID matter only to command registration.
	EnvDiscordPublicKey = "DISCORD_PUBLIC_KEY"
	EnvDiscordAppID     = "DISCORD_APP_ID"
	EnvDiscordToken     = "DISCORD_TOKEN"
	EnvDiscordGuildID   = "DISCORD_GUILD_ID"

	// Catalog
	EnvCatalogURL     = "CATALOG_URL"
	EnvMediaBaseURL   = "MEDIA_BASE_URL"
	EnvCatalogTimeout = "CATALOG_TIMEOUT"

	// Server
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	// Sentry Feature
	EnvSentryDSN         = "SENTRY_DSN"
	EnvSentryEnvironment = "SENTRY_ENVIRONMENT"
	EnvSentryRelease     = "SENTRY_RELEASE"
	EnvSentrySampleRate  = "SENTRY_SAMPLE_RATE"
)
