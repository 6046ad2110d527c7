// Package scrappa is a client for the Scrappa scraping API: Google Maps,
// Search, Translate, Images and YouTube.
//
//	c := scrappa.New(scrappa.Config{APIKey: os.Getenv("SCRAPPA_API_KEY")})
//	res, err := c.Maps().AdvancedSearch(ctx, "pizza", scrappa.Params{"zoom": 12})
//
// All sub-clients share the Client's transport. The configuration mutators
// are not synchronized: do not call them while requests are in flight on
// other goroutines.
package scrappa

import (
	"context"

	"github.com/loykin/scrappa/internal/config"
	"github.com/loykin/scrappa/internal/transport"
	"github.com/spf13/viper"
)

// Getter performs a GET on an endpoint. *Transport implements it; tests
// substitute their own.
type Getter interface {
	Get(ctx context.Context, endpoint string, params Params) (*Result, error)
}

// Config is the client configuration: base url, api key, timeout in
// seconds, extra headers and optional TLS settings.
type Config = transport.Config

// Header is one extra header sent with every request.
type Header = transport.Header

// Transport performs the HTTP calls for a Client.
type Transport = transport.Transport

// Client is the single entry point to every Scrappa API.
type Client struct {
	transport *Transport

	maps      *MapsClient
	search    *SearchClient
	translate *TranslateClient
	images    *ImagesClient
	youtube   *YouTubeClient
}

// New builds a Client from cfg. Empty BaseURL and Timeout take the defaults
// https://app.scrappa.co/api and 30 seconds.
func New(cfg Config) *Client {
	return NewWithTransport(transport.New(cfg))
}

// NewWithTransport builds a Client around an existing transport.
func NewWithTransport(t *Transport) *Client {
	return &Client{
		transport: t,
		maps:      NewMapsClient(t),
		search:    NewSearchClient(t),
		translate: NewTranslateClient(t),
		images:    NewImagesClient(t),
		youtube:   NewYouTubeClient(t),
	}
}

// NewFromEnv builds a Client from SCRAPPA_API_KEY, SCRAPPA_BASE_URL and
// SCRAPPA_TIMEOUT, and from configFile when it is not empty.
// The logging section (SCRAPPA_LOGGING_LEVEL, SCRAPPA_LOGGING_FORMAT,
// SCRAPPA_LOGGING_MASK_SENSITIVE) replaces the default logger.
func NewFromEnv(configFile string) (*Client, error) {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.SetupLogging(); err != nil {
		return nil, err
	}
	return New(cfg.Transport()), nil
}

func (c *Client) Maps() *MapsClient           { return c.maps }
func (c *Client) Search() *SearchClient       { return c.search }
func (c *Client) Translate() *TranslateClient { return c.translate }
func (c *Client) Images() *ImagesClient       { return c.images }
func (c *Client) YouTube() *YouTubeClient     { return c.youtube }

// Transport returns the transport shared by every sub-client.
func (c *Client) Transport() *Transport { return c.transport }

// Get calls any endpoint, including ones without a dedicated method.
func (c *Client) Get(ctx context.Context, endpoint string, params Params) (*Result, error) {
	return c.transport.Get(ctx, endpoint, params)
}

// AdvancedSearchGmaps is shorthand for Maps().AdvancedSearch and has the
// same contract: params must carry zoom, and lat, lon and limit are sent
// when set. Older clients exposed a query-only helper under this name;
// this one returns a ValidationError for zoom when it is missing.
func (c *Client) AdvancedSearchGmaps(ctx context.Context, query string, params Params) (*Result, error) {
	return c.maps.AdvancedSearch(ctx, query, params)
}

// AutoCompleteGmaps is shorthand for Maps().Autocomplete.
func (c *Client) AutoCompleteGmaps(ctx context.Context, query string) (*Result, error) {
	return c.maps.Autocomplete(ctx, query)
}

func (c *Client) SetAPIKey(apiKey string) *Client {
	c.transport.SetAPIKey(apiKey)
	return c
}

// SetBaseURL replaces the base url; trailing slashes are dropped.
func (c *Client) SetBaseURL(baseURL string) *Client {
	c.transport.SetBaseURL(baseURL)
	return c
}

// SetTimeout sets the request timeout in seconds.
func (c *Client) SetTimeout(seconds int) *Client {
	c.transport.SetTimeout(seconds)
	return c
}

// AddHeader appends a header to every request. Repeated names are all sent.
func (c *Client) AddHeader(name, value string) *Client {
	c.transport.AddHeader(name, value)
	return c
}
