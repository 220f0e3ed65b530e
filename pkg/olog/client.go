// Package olog is a Go client library for the Phoebus Olog electronic
// logbook service. It exposes CRUD operations over HTTP for log entries,
// logbooks, tags, properties, severity levels, templates, and file
// attachments, plus a simplified facade for data-acquisition integration.
package olog

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/sligara7/phoebus-golog/internal/common/httpclient"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the resource client for the Olog service. It exposes one method
// per REST endpoint and is safe to copy per worker; the shared transport is
// itself safe for concurrent use, but the client makes no further
// thread-safety claims.
type Client struct {
	config Config
	http   httpclient.HTTPClientInterface
}

// NewClient resolves configuration from defaults, environment variables, an
// optional configuration file, and the explicit options, then returns a
// client holding an authenticated session with the default headers applied.
func NewClient(opts Options) (*Client, error) {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Client{
		config: cfg,
		http:   httpclient.NewClient(cfg),
	}, nil
}

// NewClientFromConfig creates a client from a configuration file, with the
// remaining layers still applied in their usual precedence.
func NewClientFromConfig(path string, opts Options) (*Client, error) {
	opts.ConfigFile = path
	return NewClient(opts)
}

// NewClientFromEnv creates a client resolving from environment variables
// under the given prefix. An empty prefix means DefaultEnvPrefix.
func NewClientFromEnv(prefix string, opts Options) (*Client, error) {
	opts.EnvPrefix = prefix
	opts.DisableEnv = false
	return NewClient(opts)
}

// Config returns the resolved client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close releases idle connections held by the transport. The client remains
// usable after Close; it is safe to call multiple times and from a defer.
func (c *Client) Close() {
	c.http.Close()
}

// getJSON performs a GET and decodes the JSON response into out. An empty
// response body leaves out untouched.
func (c *Client) getJSON(op, path string, query map[string]string, out any) error {
	body, _, err := c.http.DoRequest(httpclient.RequestOptions{
		Method:      http.MethodGet,
		Path:        path,
		QueryParams: query,
	})
	if err != nil {
		return transportError(op, err)
	}
	return decodeBody(op, body, out)
}

// putJSON performs a PUT with a JSON payload and decodes the response into out.
func (c *Client) putJSON(op, path string, query map[string]string, in, out any) error {
	return c.sendJSON(op, http.MethodPut, path, query, in, out)
}

func (c *Client) sendJSON(op, method, path string, query map[string]string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return ErrValidation.MsgErr(op+": unable to encode request payload", err)
		}
	}
	body, _, err := c.http.DoRequest(httpclient.RequestOptions{
		Method:      method,
		Path:        path,
		QueryParams: query,
		Body:        payload,
	})
	if err != nil {
		return transportError(op, err)
	}
	return decodeBody(op, body, out)
}

// deleteResource performs a DELETE and reports success when the service
// answers with status 200.
func (c *Client) deleteResource(op, path string) (bool, error) {
	_, status, err := c.http.DoRequest(httpclient.RequestOptions{
		Method: http.MethodDelete,
		Path:   path,
	})
	if err != nil {
		return false, transportError(op, err)
	}
	return status == http.StatusOK, nil
}

// getRaw performs a GET and returns the raw response body.
func (c *Client) getRaw(op, path string, query map[string]string) ([]byte, error) {
	body, _, err := c.http.DoRequest(httpclient.RequestOptions{
		Method:      http.MethodGet,
		Path:        path,
		QueryParams: query,
	})
	if err != nil {
		return nil, transportError(op, err)
	}
	return body, nil
}

// httpRequest is a small convenience constructor for transport request options.
func httpRequest(method, path string, query map[string]string, body []byte) httpclient.RequestOptions {
	return httpclient.RequestOptions{
		Method:      method,
		Path:        path,
		QueryParams: query,
		Body:        body,
	}
}

func decodeBody(op string, body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return ErrTransport.MsgErr(op+": unable to decode response", err)
	}
	return nil
}

// ServiceInfo returns service information and health status.
func (c *Client) ServiceInfo() (map[string]any, error) {
	var info map[string]any
	if err := c.getJSON("get service info", "/Olog", nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// ServiceConfiguration returns the service configuration.
func (c *Client) ServiceConfiguration() (map[string]any, error) {
	var conf map[string]any
	if err := c.getJSON("get service configuration", "/Olog/configuration", nil, &conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// Help returns the help document for a topic as raw text. The lang query
// parameter is sent only for non-English languages.
func (c *Client) Help(topic, language string) (string, error) {
	query := map[string]string{}
	if language != "" && language != "en" {
		query["lang"] = language
	}
	body, err := c.getRaw("get help", "/Olog/help/"+topic, query)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
