package apiclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/BerryBytes/hrctl/internal/obs"
	"github.com/BerryBytes/hrctl/internal/session"
	"go.uber.org/zap"
)

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func WithMetrics(m *obs.ClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTerminateHandler sets the callback run once per failed refresh cycle,
// after the credentials were cleared.
func WithTerminateHandler(fn session.TerminateFunc) Option {
	return func(c *Client) {
		c.onTerminate = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

type requestOptions struct {
	query  url.Values
	header http.Header
	noAuth bool
}

type RequestOption func(*requestOptions)

func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) {
		for k, vs := range q {
			for _, v := range vs {
				o.query.Add(k, v)
			}
		}
	}
}

func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.header.Set(key, value)
	}
}

// WithoutAuth sends the request without a bearer token. A 401 answer is then
// an ordinary HTTPError and never starts a refresh.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) {
		o.noAuth = true
	}
}
