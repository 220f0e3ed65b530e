package httpclient

// HTTPClientInterface defines the interface for HTTP client implementations.
// It provides a common set of methods for making JSON and multipart requests.
// Implementations must handle authentication, request building, and response
// processing.
type HTTPClientInterface interface {
	// DoRequest makes an HTTP request with the given options.
	// Returns the response body, the HTTP status code, and any error that occurred.
	DoRequest(opts RequestOptions) ([]byte, int, error)

	// DoMultipart makes a multipart/form-data request with the given parts, in order.
	// Returns the response body, the HTTP status code, and any error that occurred.
	DoMultipart(method, endpoint string, queryParams map[string]string, parts []FormPart) ([]byte, int, error)

	// Close releases any idle connections held by the underlying transport.
	Close()
}

// Verify that HTTPClient implements the HTTPClientInterface.
var _ HTTPClientInterface = &HTTPClient{}
