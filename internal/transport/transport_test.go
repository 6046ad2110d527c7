package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newServer(t *testing.T, status int, body string, seen *http.Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r.Clone(context.Background())
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTransport_Get_RequiresAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	tr := New(Config{BaseURL: srv.URL})
	_, err := tr.Get(context.Background(), "search", Params{"query": "x"})
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no request without api key, got %d", calls)
	}
}

func TestTransport_Get_SendsHeadersAndQuery(t *testing.T) {
	var seen http.Request
	srv := newServer(t, 200, `{"ok":true}`, &seen)

	tr := New(Config{BaseURL: srv.URL + "/api/", APIKey: "k1"})
	tr.AddHeader("X-Trace", "a").AddHeader("X-Trace", "b")

	params := Params{"query": "pizza place", "limit": 5}
	res, err := tr.Get(context.Background(), "/search", params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if seen.URL.Path != "/api/search" {
		t.Fatalf("expected path /api/search, got %s", seen.URL.Path)
	}
	if seen.URL.RawQuery != "limit=5&query=pizza+place" {
		t.Fatalf("unexpected query %q", seen.URL.RawQuery)
	}
	if got := seen.Header.Get("x-api-key"); got != "k1" {
		t.Fatalf("expected x-api-key k1, got %q", got)
	}
	if got := seen.Header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected json content type, got %q", got)
	}
	if got := seen.Header.Get("Accept"); got != "application/json" {
		t.Fatalf("expected json accept, got %q", got)
	}
	if got := seen.Header.Get("User-Agent"); got != "Scrappa-Go/1.0" {
		t.Fatalf("unexpected user agent %q", got)
	}
	if got := seen.Header.Values("X-Trace"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected duplicate X-Trace headers in order, got %v", got)
	}

	if res.Parameters["query"] != "pizza place" {
		t.Fatalf("expected parameters echoed, got %v", res.Parameters)
	}
	m, ok := res.Results.(map[string]any)
	if !ok || m["ok"] != true {
		t.Fatalf("unexpected results %#v", res.Results)
	}
	if !res.Get("ok").Bool() {
		t.Fatalf("expected gjson lookup to see ok=true")
	}
}

func TestTransport_Get_NoQueryWhenParamsEmpty(t *testing.T) {
	var seen http.Request
	srv := newServer(t, 200, `[]`, &seen)

	tr := New(Config{BaseURL: srv.URL, APIKey: "k"})
	res, err := tr.Get(context.Background(), "images", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if seen.URL.RawQuery != "" {
		t.Fatalf("expected no query string, got %q", seen.URL.RawQuery)
	}
	if arr, ok := res.Results.([]any); !ok || len(arr) != 0 {
		t.Fatalf("expected empty array, got %#v", res.Results)
	}
}

func TestTransport_Get_HTTPErrorCarriesStatusAndBody(t *testing.T) {
	for _, body := range []string{`{"message":"not found"}`, `<html>nope</html>`} {
		srv := newServer(t, 404, body, nil)
		tr := New(Config{BaseURL: srv.URL, APIKey: "k"})

		_, err := tr.Get(context.Background(), "maps/reviews", Params{"business_id": "b"})
		var re *RequestError
		if !errors.As(err, &re) {
			t.Fatalf("expected RequestError, got %T %v", err, err)
		}
		if re.StatusCode != 404 || re.Body != body {
			t.Fatalf("expected 404 with raw body, got %d %q", re.StatusCode, re.Body)
		}
		if !strings.Contains(re.Error(), "404") {
			t.Fatalf("expected status in message, got %q", re.Error())
		}
	}
}

func TestTransport_Get_InvalidJSON(t *testing.T) {
	srv := newServer(t, 200, `{not json`, nil)
	tr := New(Config{BaseURL: srv.URL, APIKey: "k"})

	_, err := tr.Get(context.Background(), "search", Params{"query": "q"})
	var re *ResponseError
	if !errors.As(err, &re) {
		t.Fatalf("expected ResponseError, got %T %v", err, err)
	}
	if !strings.HasPrefix(re.Error(), "invalid JSON response: ") {
		t.Fatalf("unexpected message %q", re.Error())
	}
}

func TestTransport_Get_NullBecomesEmptyObject(t *testing.T) {
	srv := newServer(t, 200, `null`, nil)
	tr := New(Config{BaseURL: srv.URL, APIKey: "k"})

	res, err := tr.Get(context.Background(), "search", Params{"query": "q"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	m, ok := res.Results.(map[string]any)
	if !ok || m == nil || len(m) != 0 {
		t.Fatalf("expected empty map, got %#v", res.Results)
	}
	if string(res.Raw()) != "{}" {
		t.Fatalf("expected raw {}, got %q", res.Raw())
	}
}

func TestTransport_Get_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	tr := New(Config{BaseURL: url, APIKey: "k"})
	_, err := tr.Get(context.Background(), "search", nil)
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("expected RequestError, got %T %v", err, err)
	}
	if re.StatusCode != 0 || re.Err == nil {
		t.Fatalf("expected transport error without status, got %+v", re)
	}
}

func TestTransport_SetBaseURL_TrimsTrailingSlash(t *testing.T) {
	tr := New(Config{APIKey: "k"})
	tr.SetBaseURL("https://x.test/api/")
	got := tr.BuildURL("search", Params{"query": "a"})
	if got != "https://x.test/api/search?query=a" {
		t.Fatalf("unexpected url %q", got)
	}
	if strings.Contains(strings.TrimPrefix(got, "https://"), "//") {
		t.Fatalf("double slash in %q", got)
	}
}

func TestTransport_Defaults(t *testing.T) {
	tr := New(Config{})
	if tr.BaseURL() != "https://app.scrappa.co/api" {
		t.Fatalf("unexpected default base url %q", tr.BaseURL())
	}
	if tr.Timeout() != 30 {
		t.Fatalf("unexpected default timeout %d", tr.Timeout())
	}
	if tr.APIKey() != "" {
		t.Fatalf("expected empty api key")
	}
}

func TestTransport_BuildHeaders_Order(t *testing.T) {
	tr := New(Config{APIKey: "k"}).AddHeader("X-A", "1")
	hdrs := tr.BuildHeaders()
	names := make([]string, len(hdrs))
	for i, h := range hdrs {
		names[i] = h.Name
	}
	want := []string{"Content-Type", "Accept", "User-Agent", "X-A", "x-api-key"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected header order %v", names)
	}

	tr.SetAPIKey("")
	if last := tr.BuildHeaders()[len(tr.BuildHeaders())-1]; last.Name == "x-api-key" {
		t.Fatalf("expected no api key header when key is empty")
	}
}

func TestTransport_MutatorsChain(t *testing.T) {
	tr := New(Config{})
	same := tr.SetAPIKey("a").SetTimeout(5).AddHeader("X", "y").SetBaseURL("http://h/")
	if same != tr {
		t.Fatalf("expected mutators to return the receiver")
	}
	if tr.APIKey() != "a" || tr.Timeout() != 5 || tr.BaseURL() != "http://h" || len(tr.Headers()) != 1 {
		t.Fatalf("unexpected state after chain: %+v", tr)
	}
}

func TestTransport_Get_ReusesConnection(t *testing.T) {
	var opened atomic.Int32
	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	srv.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			opened.Add(1)
		}
	}
	srv.Start()
	defer srv.Close()

	tr := New(Config{BaseURL: srv.URL, APIKey: "k"})
	for i := 0; i < 20; i++ {
		if _, err := tr.Get(context.Background(), "search", Params{"query": "x"}); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
	if n := opened.Load(); n != 1 {
		t.Fatalf("expected 1 connection for sequential requests, got %d", n)
	}
}

func TestTransport_SetTimeout_AppliesToClient(t *testing.T) {
	tr := New(Config{})
	if got := tr.client.GetClient().Timeout; got != 30*time.Second {
		t.Fatalf("expected default 30s client timeout, got %v", got)
	}
	tr.SetTimeout(5)
	if got := tr.client.GetClient().Timeout; got != 5*time.Second {
		t.Fatalf("expected 5s client timeout, got %v", got)
	}
}

func TestTransport_SetTLSConfig(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := New(Config{BaseURL: srv.URL, APIKey: "k"})
	if _, err := tr.Get(context.Background(), "search", nil); err == nil {
		t.Fatalf("expected certificate error against self-signed server")
	}

	cfg := &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- test only
	if _, err := tr.SetTLSConfig(cfg).Get(context.Background(), "search", nil); err != nil {
		t.Fatalf("unexpected err with TLS override: %v", err)
	}
	if cfg.MinVersion != 0 {
		t.Fatalf("caller TLS config was modified: MinVersion=%x", cfg.MinVersion)
	}
}
