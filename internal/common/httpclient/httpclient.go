// Package httpclient provides a configurable HTTP client for making requests
// to the Olog REST API. It supports Basic authentication, handles common HTTP
// operations including multipart uploads, and provides error handling for
// server responses. The package requires a Configurator implementation for
// server configuration and authentication details.
package httpclient

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// Configurator defines the interface for providing server configuration and
// authentication details. Implementations must provide the service base URL,
// client identification, TLS verification policy, request timeout, and
// optional Basic auth credentials.
type Configurator interface {
	GetBaseURL() string
	GetClientInfo() string
	GetVerifySSL() bool
	GetTimeout() time.Duration
	GetBasicAuth() (username, password string, ok bool)
}

// HTTPError represents an error response from the server with HTTP status
// code, message, and the raw response body for structured caller handling.
type HTTPError struct {
	StatusCode int    // HTTP status code of the error
	Message    string // Error message extracted from the response
	Body       []byte // Raw response body
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an HTTPError with status 404.
func IsNotFound(err error) bool {
	httpErr, ok := err.(*HTTPError)
	return ok && httpErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is an HTTPError with status 409.
func IsConflict(err error) bool {
	httpErr, ok := err.(*HTTPError)
	return ok && httpErr.StatusCode == http.StatusConflict
}

// IsServerError reports whether err is an HTTPError with a 5xx status.
func IsServerError(err error) bool {
	httpErr, ok := err.(*HTTPError)
	return ok && httpErr.StatusCode >= 500
}

// HTTPClient represents a client for making HTTP requests to the Olog server.
// It handles authentication, request building, and response processing.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
}

// NewClient creates a new HTTP client using the provided configuration.
// The config parameter must implement the Configurator interface.
// TLS certificate validation is skipped when the configuration disables
// SSL verification.
func NewClient(config Configurator) *HTTPClient {
	httpClient := &http.Client{
		Timeout: config.GetTimeout(),
	}

	if !config.GetVerifySSL() {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return &HTTPClient{
		config:     config,
		httpClient: httpClient,
	}
}

// RequestOptions contains options for making HTTP requests.
// All fields are optional except Method and Path.
type RequestOptions struct {
	Method      string            // HTTP method (GET, POST, PUT, DELETE)
	Path        string            // API endpoint path
	QueryParams map[string]string // Optional query parameters
	Body        []byte            // Optional request body
}

// buildURL resolves an endpoint path and query parameters against the
// configured base URL.
func (c *HTTPClient) buildURL(endpoint string, queryParams map[string]string) (string, error) {
	u, err := url.Parse(c.config.GetBaseURL())
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %v", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.Path = path.Join(u.Path, endpoint)

	q := u.Query()
	for k, v := range queryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// newRequest creates an http.Request with the default headers and Basic auth
// credentials applied. Every request carries a unique X-Request-ID for
// correlation with server-side logs.
func (c *HTTPClient) newRequest(method, rawurl string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, rawurl, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("X-Olog-Client-Info", c.config.GetClientInfo())
	req.Header.Set("X-Request-ID", uuid.NewString())

	if username, password, ok := c.config.GetBasicAuth(); ok {
		req.SetBasicAuth(username, password)
	}

	return req, nil
}

// do executes the request, reads the full response body, and maps non-2xx
// responses to *HTTPError.
func (c *HTTPClient) do(req *http.Request) ([]byte, int, error) {
	log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("olog request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %v", err)
	}

	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(body)).Msg("olog response")

	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, newHTTPError(resp.StatusCode, body)
	}

	return body, resp.StatusCode, nil
}

// newHTTPError builds an HTTPError from a response body. The Olog service
// reports failures as JSON objects carrying either a "message" or "error"
// field; fall back to the raw body when neither is present.
func newHTTPError(statusCode int, body []byte) *HTTPError {
	msg := gjson.GetBytes(body, "message").String()
	if msg == "" {
		msg = gjson.GetBytes(body, "error").String()
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	return &HTTPError{
		StatusCode: statusCode,
		Message:    msg,
		Body:       body,
	}
}

// DoRequest makes an HTTP request with the given options. JSON bodies are
// assumed; the Content-Type header is set to application/json whenever a
// body is present.
// Returns the response body, the HTTP status code, and any error that occurred.
func (c *HTTPClient) DoRequest(opts RequestOptions) ([]byte, int, error) {
	rawurl, err := c.buildURL(opts.Path, opts.QueryParams)
	if err != nil {
		return nil, 0, err
	}

	req, err := c.newRequest(opts.Method, rawurl, bytes.NewReader(opts.Body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Close releases any idle connections held by the underlying transport.
// The client remains usable after Close; it is safe to call multiple times.
func (c *HTTPClient) Close() {
	c.httpClient.CloseIdleConnections()
}
