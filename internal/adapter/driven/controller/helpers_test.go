package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
	"github.com/diillson/wlan-autoassign-go/pkg/logger"
)

// testServer is a fake controller: it serves the token endpoint and records
// every other request.
type testServer struct {
	*httptest.Server
	mux    *http.ServeMux
	tokens atomic.Int64

	mu       sync.Mutex
	requests []string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{mux: http.NewServeMux()}
	ts.mux.HandleFunc("POST "+tokenPath, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil ||
			r.Form.Get("grant_type") != "password" ||
			r.Form.Get("username") != "admin" ||
			r.Form.Get("password") != "secret" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusUnauthorized)
			return
		}
		n := ts.tokens.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":3600}`, n)
	})

	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != tokenPath {
			ts.mu.Lock()
			ts.requests = append(ts.requests, r.Method+" "+r.URL.Path)
			ts.mu.Unlock()
		}
		ts.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	return ts
}

func (ts *testServer) handle(pattern string, h http.HandlerFunc) {
	ts.mux.HandleFunc(pattern, h)
}

func (ts *testServer) recorded() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]string(nil), ts.requests...)
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()

	c, err := NewClient(types.ControllerConfig{
		URL:        url,
		Username:   "admin",
		Password:   "secret",
		Timeout:    "5s",
		MaxRetries: 2,
	}, logger.NewTestLogger())
	require.NoError(t, err)

	c.retrying.RetryWaitMin = time.Millisecond
	c.retrying.RetryWaitMax = 5 * time.Millisecond
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}
