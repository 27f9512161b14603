package controller

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
	"github.com/diillson/wlan-autoassign-go/pkg/logger"
)

const maxErrorBody = 64 * 1024

// Client fala com a API REST do controlador: autenticação, limite de taxa e
// conversão de respostas não-2xx em *APIError.
type Client struct {
	baseURL  string
	http     *http.Client
	retrying *retryablehttp.Client
	tokens   *CachedTokenProvider
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// NewClient builds a client from the controller section of the config.
func NewClient(cfg types.ControllerConfig, log zerolog.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, types.ErrNoControllerURL
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, types.ErrNoCredentials
	}

	timeout := 30 * time.Second
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid controller timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	log = logger.WithComponent(log, "controller")
	baseURL := strings.TrimRight(cfg.URL, "/")
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: newTransport(cfg.InsecureSkipVerify),
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:  baseURL,
		http:     httpClient,
		retrying: newRetryingClient(httpClient, cfg.MaxRetries, log),
		tokens:   NewCachedTokenProvider(NewPasswordTokenProvider(baseURL, cfg.Username, cfg.Password, httpClient)),
		limiter:  rate.NewLimiter(limit, burst),
		log:      log,
	}, nil
}

func newTransport(insecure bool) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // controladores de laboratório usam certificado próprio
	}
	return t
}

// newRetryingClient só é usado para métodos idempotentes (GET e PUT).
func newRetryingClient(httpClient *http.Client, maxRetries int, log zerolog.Logger) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.HTTPClient = httpClient
	c.RetryMax = max(maxRetries, 0)
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.Logger = retryLogger{log: log}
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return c
}

// do executa a requisição. Um 401 invalida o token e a requisição é repetida uma vez.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
	}

	for attempt := 0; ; attempt++ {
		err := c.send(ctx, method, path, payload, out)

		var apiErr *APIError
		if attempt == 0 && errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			c.log.Debug().Str("method", method).Str("path", path).Msg("token rejected, refreshing")
			c.tokens.InvalidateToken()
			continue
		}

		return err
	}
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	token, err := c.tokens.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	start := time.Now()
	resp, err := c.roundTrip(ctx, method, c.baseURL+path, token, payload)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("controller request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(method, path, resp.StatusCode, body)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}

	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, url, token string, payload []byte) (*http.Response, error) {
	if method == http.MethodGet || method == http.MethodPut {
		var raw interface{}
		if payload != nil {
			raw = payload
		}
		req, err := retryablehttp.NewRequestWithContext(ctx, method, url, raw)
		if err != nil {
			return nil, err
		}
		setHeaders(req.Header, token, payload != nil)
		return c.retrying.Do(req)
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	setHeaders(req.Header, token, payload != nil)
	return c.http.Do(req)
}

func setHeaders(h http.Header, token string, hasBody bool) {
	h.Set("Authorization", "Bearer "+token)
	h.Set("Accept", "application/json")
	if hasBody {
		h.Set("Content-Type", "application/json")
	}
}

// retryLogger adapta o zerolog ao LeveledLogger do retryablehttp.
type retryLogger struct {
	log zerolog.Logger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.log.Error().Fields(kv).Msg(msg) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.log.Warn().Fields(kv).Msg(msg) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.log.Debug().Fields(kv).Msg(msg) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.log.Debug().Fields(kv).Msg(msg) }
