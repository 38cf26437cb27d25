package apiclient

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/host"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient returns an http.Client whose transport emits otel spans for
// every outbound call.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

func UserAgent(version string) string {
	if version == "" {
		version = "dev"
	}

	info, err := host.Info()
	if err != nil || info == nil {
		return fmt.Sprintf("hrctl/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("hrctl/%s (%s; %s %s)", version, info.OS, info.Platform, info.PlatformVersion)
}
