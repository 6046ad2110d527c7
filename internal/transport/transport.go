package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/loykin/scrappa/internal/common"
	"github.com/loykin/scrappa/internal/constants"
	"github.com/loykin/scrappa/internal/httpc"
	"github.com/loykin/scrappa/internal/query"
)

// Header is one outgoing header. Order is kept and names may repeat.
type Header struct {
	Name  string
	Value string
}

// Config holds the values read once when a Transport is built.
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   int // seconds
	Headers   []Header
	TLSConfig *tls.Config
}

// Transport issues GET requests against the Scrappa API.
//
// The mutators are not synchronized. Callers sharing one Transport across
// goroutines must not change its configuration while requests are in flight.
// One resty client is built per Transport so connections are pooled across calls.
type Transport struct {
	baseURL string
	apiKey  string
	timeout int
	headers []Header
	client  *resty.Client
}

// New builds a Transport, applying defaults for empty base url and timeout.
func New(cfg Config) *Transport {
	baseURL := cfg.BaseURL
	if strings.TrimSpace(baseURL) == "" {
		baseURL = constants.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultTimeoutSeconds
	}
	h := httpc.Httpc{TlsConfig: cfg.TLSConfig, Timeout: time.Duration(timeout) * time.Second}
	return &Transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		timeout: timeout,
		headers: append([]Header(nil), cfg.Headers...),
		client:  h.New(),
	}
}

// BuildURL joins the base url and endpoint and appends the encoded params.
func (t *Transport) BuildURL(endpoint string, params Params) string {
	u := t.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		if qs := query.Encode(params); qs != "" {
			u += "?" + qs
		}
	}
	return u
}

// BuildHeaders returns the fixed JSON headers, every added header in
// insertion order and finally the api key.
func (t *Transport) BuildHeaders() []Header {
	hdrs := []Header{
		{constants.HeaderContentType, constants.MIMEJSON},
		{constants.HeaderAccept, constants.MIMEJSON},
		{constants.HeaderUserAgent, constants.UserAgent},
	}
	hdrs = append(hdrs, t.headers...)
	if t.apiKey != "" {
		hdrs = append(hdrs, Header{constants.HeaderAPIKey, t.apiKey})
	}
	return hdrs
}

// Get performs a GET on endpoint and decodes the JSON body.
func (t *Transport) Get(ctx context.Context, endpoint string, params Params) (*Result, error) {
	if t.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if ctx == nil {
		ctx = context.Background()
	}

	u := t.BuildURL(endpoint, params)
	logger := common.GetLogger().WithComponent("transport").WithEndpoint(endpoint).WithRequest(http.MethodGet, u)

	req := t.client.R().SetContext(ctx)
	for _, hd := range t.BuildHeaders() {
		req.Header.Add(hd.Name, hd.Value)
	}

	logger.Debug("sending request", "params_count", len(params), "headers", logger.Masker().MaskHeaders(req.Header))
	resp, err := req.Get(u)
	if err != nil {
		logger.Error("HTTP request failed", "error", err)
		return nil, &RequestError{Err: err}
	}

	status := resp.StatusCode()
	body := resp.Body()
	logger.Debug("received HTTP response", "status_code", status, "response_size", len(body))

	if status >= http.StatusBadRequest {
		logger.Warn("API returned error status", "status_code", status)
		return nil, &RequestError{StatusCode: status, Body: string(body)}
	}

	results, raw, err := decode(body)
	if err != nil {
		logger.Error("failed to decode response", "error", err)
		return nil, &ResponseError{Err: err}
	}

	return &Result{Parameters: params, Results: results, raw: raw}, nil
}

// decode parses body as JSON. A JSON null becomes an empty object so
// callers never confuse "no data" with a failure.
func decode(body []byte) (any, []byte, error) {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, nil, err
	}
	if data == nil {
		return map[string]any{}, []byte("{}"), nil
	}
	return data, bytes.TrimSpace(body), nil
}

// SetAPIKey sets the key sent in the x-api-key header.
func (t *Transport) SetAPIKey(apiKey string) *Transport {
	t.apiKey = apiKey
	return t
}

// SetBaseURL replaces the base url, dropping trailing slashes.
func (t *Transport) SetBaseURL(baseURL string) *Transport {
	t.baseURL = strings.TrimRight(baseURL, "/")
	return t
}

// SetTimeout sets the request timeout in seconds. Zero or less disables it.
func (t *Transport) SetTimeout(seconds int) *Transport {
	t.timeout = seconds
	t.client.SetTimeout(time.Duration(seconds) * time.Second)
	return t
}

// AddHeader appends a header. Existing headers with the same name are kept.
func (t *Transport) AddHeader(name, value string) *Transport {
	t.headers = append(t.headers, Header{Name: name, Value: value})
	return t
}

// SetTLSConfig overrides the TLS settings; nil restores the defaults.
func (t *Transport) SetTLSConfig(cfg *tls.Config) *Transport {
	t.client.SetTLSClientConfig(httpc.TLSConfig(cfg))
	return t
}

func (t *Transport) APIKey() string  { return t.apiKey }
func (t *Transport) BaseURL() string { return t.baseURL }
func (t *Transport) Timeout() int    { return t.timeout }

// Headers returns a copy of the added headers.
func (t *Transport) Headers() []Header {
	return append([]Header(nil), t.headers...)
}
