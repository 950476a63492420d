package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-stego-client/internal/logger"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:5000", 0, log)
//	resp, err := client.R().Get("/download/x.png")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A zero timeout
// leaves requests unbounded. resty's internal diagnostics are routed to log.
func NewHTTPClient(baseURL string, timeout time.Duration, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetLogger(restyLogger{log: log})

	return &HTTPClient{Client: client}
}

// restyLogger adapts [logger.Logger] to the resty.Logger interface.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msg(trimMessage(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msg(trimMessage(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msg(trimMessage(format, v...))
}

func trimMessage(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
