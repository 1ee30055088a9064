package utils

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const maxLoggedBody = 2000

// redactedHeaders never reach the log.
var redactedHeaders = []string{"Authorization", "X-Goog-Api-Key"}

// LoggingTransport implements http.RoundTripper and logs outbound requests and responses
type LoggingTransport struct {
	Transport http.RoundTripper
	Logger    *zap.Logger
}

// RoundTrip executes a single HTTP transaction and logs the request and response
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	log := t.Logger
	if log == nil {
		log = zap.NewNop()
	}

	reqBody := "empty"
	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes)) // Restore body
		if len(bodyBytes) > 0 {
			reqBody = truncate(bodyBytes)
		}
	}
	log.Debug("outbound request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", redact(req.Header)),
		zap.String("body", reqBody),
	)

	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	resp, err := transport.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Warn("outbound request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("latency", duration),
			zap.Error(err),
		)
		return nil, err
	}

	respBody := "empty"
	if resp.Body != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes)) // Restore body
		if len(bodyBytes) > 0 {
			respBody = truncate(bodyBytes)
		}
	}
	log.Debug("outbound response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.String("body", respBody),
	)

	return resp, nil
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "...(truncated)"
	}
	return string(body)
}

func redact(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range redactedHeaders {
		if out.Get(name) != "" {
			out.Set(name, "[redacted]")
		}
	}
	return out
}

// NewHTTPClient returns an http.Client that logs through log. A zero timeout
// means the client waits as long as the context allows.
func NewHTTPClient(timeout time.Duration, log *zap.Logger) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &LoggingTransport{
			Transport: http.DefaultTransport,
			Logger:    log,
		},
	}
}
