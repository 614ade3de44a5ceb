package common

// Request headers set on every outbound API call.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Durable storage keys.
const (
	TokenKey             = "token"
	ThemeKey             = "theme"
	RecentTranscriptsKey = "recent_transcripts"
)

// MaxRecentTranscripts bounds the cached list of submitted transcripts.
const MaxRecentTranscripts = 3

// MaxTranscriptFileSize is the ingestion ceiling for uploaded transcripts.
const MaxTranscriptFileSize = 1 << 20
