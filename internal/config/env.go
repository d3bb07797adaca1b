// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "CAREBOT_PORT"
	EnvLogLevel        = "CAREBOT_LOG_LEVEL"
	EnvShutdownTimeout = "CAREBOT_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir = "CAREBOT_DATA_DIR"
	EnvKBPath  = "CAREBOT_KB_PATH"

	// Dialog
	EnvPageSize        = "CAREBOT_PAGE_SIZE"
	EnvDefaultLanguage = "CAREBOT_DEFAULT_LANGUAGE"

	// Sessions
	EnvSessionTTL           = "CAREBOT_SESSION_TTL"
	EnvSessionSweepInterval = "CAREBOT_SESSION_SWEEP_INTERVAL"

	// Retrieval (tunable scoring profile)
	EnvRetrievalProfile     = "CAREBOT_RETRIEVAL_PROFILE"
	EnvRetrievalTokenWeight = "CAREBOT_RETRIEVAL_TOKEN_WEIGHT"
	EnvRetrievalTitleWeight = "CAREBOT_RETRIEVAL_TITLE_WEIGHT"
	EnvRetrievalDomainBoost = "CAREBOT_RETRIEVAL_DOMAIN_BOOST"
	EnvRetrievalShortBonus  = "CAREBOT_RETRIEVAL_SHORT_QUERY_BONUS"
	EnvRetrievalMaxResults  = "CAREBOT_RETRIEVAL_MAX_RESULTS"

	// Tokenizer
	EnvSegmenterEnabled = "CAREBOT_SEGMENTER_ENABLED"

	// Per-session rate limiting
	EnvRateLimitTokens     = "CAREBOT_RATE_LIMIT_TOKENS"
	EnvRateLimitRefillRate = "CAREBOT_RATE_LIMIT_REFILL_RATE"

	// Object store (S3-compatible, e.g. Cloudflare R2) knowledge-base source
	EnvObjStoreEnabled   = "CAREBOT_OBJSTORE_ENABLED"
	EnvObjStoreEndpoint  = "CAREBOT_OBJSTORE_ENDPOINT"
	EnvObjStoreAccessKey = "CAREBOT_OBJSTORE_ACCESS_KEY_ID"
	EnvObjStoreSecretKey = "CAREBOT_OBJSTORE_SECRET_ACCESS_KEY"
	EnvObjStoreBucket    = "CAREBOT_OBJSTORE_BUCKET"
	EnvObjStoreKBKey     = "CAREBOT_OBJSTORE_KB_KEY"

	// Sentry Feature
	EnvSentryDSN              = "CAREBOT_SENTRY_DSN"
	EnvSentryEnvironment      = "CAREBOT_SENTRY_ENVIRONMENT"
	EnvSentryRelease          = "CAREBOT_SENTRY_RELEASE"
	EnvSentrySampleRate       = "CAREBOT_SENTRY_SAMPLE_RATE"
	EnvSentryTracesSampleRate = "CAREBOT_SENTRY_TRACES_SAMPLE_RATE"

	// Better Stack Feature
	EnvBetterStackToken    = "CAREBOT_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "CAREBOT_BETTERSTACK_ENDPOINT"

	// Metrics Auth Feature
	EnvMetricsUsername = "CAREBOT_METRICS_USERNAME"
	EnvMetricsPassword = "CAREBOT_METRICS_PASSWORD"
)
