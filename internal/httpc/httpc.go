package httpc

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/loykin/scrappa/internal/constants"
)

// Httpc holds the knobs used to build the resty client behind a transport.
type Httpc struct {
	TlsConfig    *tls.Config
	Timeout      time.Duration
	MaxRedirects int
}

// New returns a resty.Client configured according to the receiver's settings.
// Certificates are always verified unless TlsConfig says otherwise; MinVersion
// defaults to TLS1.2 when a config is given without one.
func (h *Httpc) New() *resty.Client {
	c := resty.New()

	if h.Timeout > 0 {
		c.SetTimeout(h.Timeout)
	}

	redirects := h.MaxRedirects
	if redirects <= 0 {
		redirects = constants.DefaultMaxRedirects
	}
	c.SetRedirectPolicy(resty.FlexibleRedirectPolicy(redirects))

	if h.TlsConfig != nil {
		c.SetTLSClientConfig(TLSConfig(h.TlsConfig))
	}
	return c
}

// TLSConfig returns a copy of cfg with MinVersion defaulted to TLS1.2.
// The caller's config is never modified.
func TLSConfig(cfg *tls.Config) *tls.Config {
	if cfg == nil {
		return nil
	}
	cfg = cfg.Clone()
	if cfg.MinVersion == 0 {
		cfg.MinVersion = tls.VersionTLS12
	}
	return cfg
}
