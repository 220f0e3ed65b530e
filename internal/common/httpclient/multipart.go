package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// FormPart describes a single part of a multipart/form-data request body.
// A part with an empty FileName is encoded as a plain form field; a part
// with a FileName carries file content with the given content type.
type FormPart struct {
	FieldName   string    // form field name
	FileName    string    // attachment filename, empty for plain value parts
	ContentType string    // part content type, empty for plain value parts
	Reader      io.Reader // part content
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// createPart adds a single part to the multipart writer, preserving the
// declared field order. The Olog service is sensitive to part ordering, so
// parts are written exactly as supplied.
func createPart(w *multipart.Writer, part FormPart) error {
	h := make(textproto.MIMEHeader)
	if part.FileName == "" {
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"`, quoteEscaper.Replace(part.FieldName)))
	} else {
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				quoteEscaper.Replace(part.FieldName), quoteEscaper.Replace(part.FileName)))
	}
	if part.ContentType != "" {
		h.Set("Content-Type", part.ContentType)
	}

	pw, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create multipart field %q: %v", part.FieldName, err)
	}
	if part.Reader != nil {
		if _, err := io.Copy(pw, part.Reader); err != nil {
			return fmt.Errorf("failed to encode multipart field %q: %v", part.FieldName, err)
		}
	}
	return nil
}

// DoMultipart makes a multipart/form-data request with the given parts, in
// order. The default JSON content type is replaced by the boundary-carrying
// multipart content type negotiated by the encoder.
// Returns the response body, the HTTP status code, and any error that occurred.
func (c *HTTPClient) DoMultipart(method, endpoint string, queryParams map[string]string, parts []FormPart) ([]byte, int, error) {
	rawurl, err := c.buildURL(endpoint, queryParams)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, part := range parts {
		if err := createPart(w, part); err != nil {
			w.Close()
			return nil, 0, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to finalize multipart body: %v", err)
	}

	req, err := c.newRequest(method, rawurl, &buf)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req)
}
