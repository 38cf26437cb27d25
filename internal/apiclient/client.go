package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BerryBytes/hrctl/internal/obs"
	"github.com/BerryBytes/hrctl/internal/session"
	"github.com/BerryBytes/hrctl/models"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL     = "http://localhost:8000/api"
	DefaultTimeout     = 30 * time.Second
	DefaultRefreshPath = "/auth/token/refresh/"

	RequestIDHeader = "X-Request-Id"
)

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	RefreshPath string
	// RefreshLeeway > 0 renews JWT access tokens that expire within the
	// leeway before sending.
	RefreshLeeway time.Duration
	// RateLimit is the steady request rate per second. Zero disables it.
	RateLimit float64
	RateBurst int
	UserAgent string
}

// Client sends requests to the HR API on behalf of one session. Requests
// rejected with 401 wait for a single shared refresh and are replayed once.
type Client struct {
	baseURL     *url.URL
	refreshPath string
	leeway      time.Duration
	userAgent   string

	http        *http.Client
	state       *session.State
	limiter     *rate.Limiter
	log         *zap.Logger
	metrics     *obs.ClientMetrics
	onTerminate session.TerminateFunc
	now         func() time.Time
}

func New(cfg Config, state *session.State, opts ...Option) (*Client, error) {
	if state == nil {
		return nil, errors.New("session state is required")
	}

	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL %q: %w", raw, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", raw)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:     base,
		refreshPath: cfg.RefreshPath,
		leeway:      cfg.RefreshLeeway,
		userAgent:   cfg.UserAgent,
		http:        NewHTTPClient(timeout),
		state:       state,
		log:         zap.NewNop(),
		now:         time.Now,
	}
	if c.refreshPath == "" {
		c.refreshPath = DefaultRefreshPath
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Response is a 2xx answer with its body already read.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type call struct {
	method    string
	path      string
	payload   []byte
	opts      requestOptions
	requestID string
}

// Request sends one logical request. The access token is read from the
// session right before every dispatch. A 401 triggers the shared refresh and
// a single replay; a second 401 ends with AuthExpiredError.
func (c *Client) Request(ctx context.Context, method, path string, body any, opts ...RequestOption) (*Response, error) {
	cl := call{
		method:    strings.ToUpper(method),
		path:      path,
		opts:      requestOptions{query: url.Values{}, header: http.Header{}},
		requestID: ulid.Make().String(),
	}
	for _, opt := range opts {
		opt(&cl.opts)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		cl.payload = payload
	}

	if cl.opts.noAuth {
		resp, err := c.dispatch(ctx, cl, "")
		if err != nil {
			return nil, err
		}
		return result(resp)
	}

	creds, err := c.state.Current(ctx)
	if err != nil {
		return nil, err
	}

	if c.leeway > 0 && creds.ExpiresWithin(c.now(), c.leeway) {
		c.log.Debug("access token about to expire, refreshing first", zap.String("request_id", cl.requestID))
		if creds, err = c.refresh(ctx, creds.AccessToken); err != nil {
			return nil, err
		}
	}

	resp, err := c.dispatch(ctx, cl, creds.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusUnauthorized {
		return result(resp)
	}

	c.log.Debug("request unauthorized, waiting for refresh",
		zap.String("request_id", cl.requestID),
		zap.String("path", cl.path),
	)

	fresh, err := c.refresh(ctx, creds.AccessToken)
	if err != nil {
		return nil, err
	}

	resp, err = c.dispatch(ctx, cl, fresh.AccessToken)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusUnauthorized {
		return nil, &AuthExpiredError{Cause: newHTTPError(resp.Status, resp.Body)}
	}
	return result(resp)
}

// RefreshNow runs a refresh cycle for the current access token through the
// same gate the request path uses.
func (c *Client) RefreshNow(ctx context.Context) error {
	creds, err := c.state.Current(ctx)
	if err != nil {
		return err
	}
	_, err = c.refresh(ctx, creds.AccessToken)
	return err
}

func (c *Client) refresh(ctx context.Context, stale string) (session.Credentials, error) {
	creds, err := c.state.Refresh(ctx, stale, c.exchange, c.onTerminate)
	if err == nil {
		return creds, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return session.Credentials{}, &NetworkError{Method: http.MethodPost, URL: c.resolve(c.refreshPath, nil), Err: err}
	}
	return session.Credentials{}, &AuthExpiredError{Cause: err}
}

// exchange trades the refresh token at the refresh endpoint. Any failure,
// including a network error, is reported as a failed refresh.
func (c *Client) exchange(ctx context.Context, refreshToken string) (session.Credentials, error) {
	resp, err := c.Request(ctx, http.MethodPost, c.refreshPath, models.RefreshRequest{Refresh: refreshToken}, WithoutAuth())
	if err != nil {
		c.countRefresh("failure")
		c.log.Warn("token refresh failed", zap.Error(err))
		return session.Credentials{}, err
	}

	var out models.RefreshResponse
	if err := resp.Decode(&out); err != nil {
		c.countRefresh("failure")
		return session.Credentials{}, err
	}

	c.countRefresh("success")
	c.log.Debug("token refreshed", zap.String("access", obs.RedactToken(out.Access)))
	return session.Credentials{AccessToken: out.Access, RefreshToken: out.Refresh}, nil
}

func (c *Client) dispatch(ctx context.Context, cl call, token string) (*Response, error) {
	target := c.resolve(cl.path, cl.opts.query)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{Method: cl.method, URL: target, Err: err}
		}
	}

	var body io.Reader
	if cl.payload != nil {
		body = bytes.NewReader(cl.payload)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if cl.payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set(RequestIDHeader, cl.requestID)
	for k, vs := range cl.opts.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	res, err := c.http.Do(req)
	if err != nil {
		c.observe(cl.method, "error", start)
		return nil, &NetworkError{Method: cl.method, URL: target, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		c.observe(cl.method, "error", start)
		return nil, &NetworkError{Method: cl.method, URL: target, Err: err}
	}
	c.observe(cl.method, strconv.Itoa(res.StatusCode), start)

	c.log.Debug("api request",
		zap.String("method", cl.method),
		zap.String("path", cl.path),
		zap.Int("status", res.StatusCode),
		zap.String("request_id", cl.requestID),
		zap.Duration("elapsed", c.now().Sub(start)),
	)

	return &Response{Status: res.StatusCode, Header: res.Header, Body: data}, nil
}

func (c *Client) resolve(path string, query url.Values) string {
	var u url.URL
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		parsed, err := url.Parse(path)
		if err == nil {
			u = *parsed
		}
	} else {
		u = *c.baseURL
		rel, q, _ := strings.Cut(path, "?")
		u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(rel, "/")
		u.RawQuery = q
	}

	if len(query) > 0 {
		merged := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				merged.Add(k, v)
			}
		}
		u.RawQuery = merged.Encode()
	}
	return u.String()
}

func (c *Client) observe(method, code string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.Requests.WithLabelValues(method, code).Inc()
	c.metrics.RequestDuration.WithLabelValues(method).Observe(c.now().Sub(start).Seconds())
}

func (c *Client) countRefresh(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.Refreshes.WithLabelValues(result).Inc()
}

func result(resp *Response) (*Response, error) {
	if resp.Status >= 200 && resp.Status < 300 {
		return resp, nil
	}
	return nil, newHTTPError(resp.Status, resp.Body)
}
