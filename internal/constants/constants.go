package constants

// Client defaults
const (
	DefaultBaseURL        = "https://app.scrappa.co/api"
	DefaultTimeoutSeconds = 30
	UserAgent             = "Scrappa-Go/1.0"

	// resty follows redirects by default; this caps the chain.
	DefaultMaxRedirects = 10
)

// Header names
const (
	HeaderAPIKey      = "x-api-key"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"
	MIMEJSON          = "application/json"
)

// Environment and config keys
const (
	EnvPrefix     = "SCRAPPA"
	KeyAPIKey     = "api_key"
	KeyBaseURL    = "base_url"
	KeyTimeout    = "timeout"
	KeyLogLevel   = "logging.level"
	KeyLogFormat  = "logging.format"
	KeyLogMasking = "logging.mask_sensitive"
)
