package apisports

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
	"github.com/riskibarqy/soccer-tracker/internal/platform/resilience"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultHost    = "v3.football.api-sports.io"

	headerAPIKey = "x-rapidapi-key"
	headerHost   = "x-rapidapi-host"

	maxBodyBytes = 4 << 20

	// detachedRequestTimeout bounds a shared request when no client timeout is configured,
	// since it no longer ends with any single caller.
	detachedRequestTimeout = 2 * time.Minute
)

var errTransient = crerr.New("football provider transient failure")

// RequestObserver receives one call per upstream request attempt.
type RequestObserver interface {
	ObserveUpstream(endpoint, outcome string, elapsed time.Duration)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Host           string
	Timeout        time.Duration
	Logger         *logging.Logger
	Observer       RequestObserver
	CircuitBreaker resilience.BreakerConfig
}

// Client talks to the api-sports football v3 API. Each call issues exactly one GET.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	host       string
	logger     *logging.Logger
	observer   RequestObserver
	breaker    *resilience.Breaker
	timeout    time.Duration
	flight     resilience.Group[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		// The per-request timeout is carried by the request context, see detachedContext.
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		host:       host,
		logger:     logger,
		observer:   cfg.Observer,
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
		timeout:    cfg.Timeout,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "football api circuit breaker rejected request", "path", path, "state", c.breaker.State())
		c.observe(path, "rejected", 0)
		return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "football provider is temporarily unavailable")
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// The shared request is detached from the first caller's cancellation so other sessions
	// waiting on the same key are unaffected; every caller still stops waiting on its own ctx.
	results := c.flight.DoChan(fullURL, func() ([]byte, error) {
		execCtx, cancel := c.detachedContext(ctx)
		defer cancel()

		body, reqErr := c.execute(execCtx, path, fullURL)
		c.breaker.Record(reqErr != nil && crerr.Is(reqErr, errTransient))
		return body, reqErr
	})

	select {
	case <-ctx.Done():
		return nil, crerr.Wrap(ctx.Err(), "wait for football provider")
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

func (c *Client) detachedContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.timeout
	if timeout <= 0 {
		timeout = detachedRequestTimeout
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

func (c *Client) execute(ctx context.Context, path, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, crerr.Wrap(err, "build request")
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerHost, c.host)
	req.Header.Set("accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(path, "transport_error", time.Since(started))
		c.logger.WarnContext(ctx, "football api request failed", "path", path, "error", c.redact(err.Error()))
		return nil, sendError(ctx, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		c.observe(path, "read_error", time.Since(started))
		return nil, crerr.Mark(crerr.Wrap(err, "read response body"), errTransient)
	}
	c.observe(path, strconv.Itoa(resp.StatusCode), time.Since(started))

	if resp.StatusCode != http.StatusOK {
		fetchErr := &usecase.FetchError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
		}
		c.logger.WarnContext(ctx, "football api returned non-200",
			"path", path,
			"status", resp.StatusCode,
			"body", abbreviateBody(buf.B),
		)
		if isTransientStatus(resp.StatusCode) {
			return nil, crerr.Mark(fetchErr, errTransient)
		}
		return nil, fetchErr
	}

	out := make([]byte, buf.Len())
	copy(out, buf.B)
	return out, nil
}

// sendError keeps the transport cause in the chain. A deadline on the request context is
// reported as context.DeadlineExceeded and counts as an upstream failure; a cancellation
// does not.
func sendError(ctx context.Context, err error) error {
	switch ctxErr := ctx.Err(); {
	case crerr.Is(ctxErr, context.DeadlineExceeded):
		return crerr.Mark(crerr.Wrap(ctxErr, "send request: football provider timed out"), errTransient)
	case ctxErr != nil:
		return crerr.Wrap(ctxErr, "send request")
	default:
		return crerr.Mark(crerr.Wrap(err, "send request"), errTransient)
	}
}

func (c *Client) observe(path, outcome string, elapsed time.Duration) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstream(path, outcome, elapsed)
}

func (c *Client) redact(value string) string {
	if c.apiKey == "" {
		return value
	}
	return strings.ReplaceAll(value, c.apiKey, "REDACTED")
}

// reasonPhrase returns the text after the status code in the status line.
func reasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	reason := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(resp.Status), code))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

func isTransientStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
