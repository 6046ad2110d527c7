// Package mockserver runs a local stand-in for the Scrappa API. It checks
// the api key, records every request and answers with canned or echoed JSON.
package mockserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/loykin/scrappa/internal/constants"
)

// Request is one recorded call.
type Request struct {
	Path   string
	Query  map[string][]string
	Header http.Header
}

type reply struct {
	status int
	body   string
}

// Server is a fake Scrappa API.
type Server struct {
	APIKey string

	mu       sync.Mutex
	requests []Request
	replies  map[string]reply
	engine   *gin.Engine
	http     *httptest.Server
}

// New returns a server accepting apiKey. An empty apiKey accepts anything.
func New(apiKey string) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{APIKey: apiKey, replies: map[string]reply{}}

	r := gin.New()
	r.Use(gin.Recovery())
	api := r.Group("/api")
	api.Use(s.auth())
	api.GET("/*path", s.handle)
	s.engine = r
	return s
}

// Start serves on a random local port and returns the base url, e.g.
// http://127.0.0.1:1234/api.
func (s *Server) Start() string {
	s.http = httptest.NewServer(s.engine)
	return s.http.URL + "/api"
}

// Close stops the server started by Start.
func (s *Server) Close() {
	if s.http != nil {
		s.http.Close()
	}
}

// Handler exposes the gin engine for callers that manage their own listener.
func (s *Server) Handler() http.Handler { return s.engine }

// Reply makes path (e.g. "maps/reviews") answer with status and a raw body.
func (s *Server) Reply(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[strings.Trim(path, "/")] = reply{status: status, body: body}
}

// Requests returns a copy of the recorded calls.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent call, or false when none was made.
func (s *Server) Last() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.APIKey != "" && c.GetHeader(constants.HeaderAPIKey) != s.APIKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}
		c.Next()
	}
}

func (s *Server) handle(c *gin.Context) {
	path := strings.Trim(c.Param("path"), "/")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Path:   path,
		Query:  c.Request.URL.Query(),
		Header: c.Request.Header.Clone(),
	})
	rep, ok := s.replies[path]
	s.mu.Unlock()

	if ok {
		c.Data(rep.status, constants.MIMEJSON, []byte(rep.body))
		return
	}

	query := gin.H{}
	for k, v := range c.Request.URL.Query() {
		if len(v) == 1 {
			query[k] = v[0]
		} else {
			query[k] = v
		}
	}
	c.JSON(http.StatusOK, gin.H{"endpoint": path, "query": query})
}
