// Package client is a typed data-access layer over the showcase API.
// Every method mirrors one endpoint: JSON bodies for plain CRUD,
// multipart when a file may ride along, bearer credential attached
// when the caller set one.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

// WithToken sets the bearer credential attached to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken swaps the bearer credential, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx answer decoded into the server's error
// envelope.
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Field      string `json:"field"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// FileUpload is a file attached to a multipart request.
type FileUpload struct {
	Name   string
	Reader io.Reader
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = ""
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, body, out)
}

func (c *Client) doForm(ctx context.Context, method, path string, build func(*formWriter) error, out any) error {
	var buf bytes.Buffer
	fw := &formWriter{w: multipart.NewWriter(&buf)}
	if err := build(fw); err != nil {
		return err
	}
	if err := fw.w.Close(); err != nil {
		return fmt.Errorf("finalize form: %w", err)
	}
	return c.do(ctx, method, path, fw.w.FormDataContentType(), &buf, out)
}

// formWriter assembles a multipart body, skipping absent optional
// fields so partial updates only touch what the caller supplied.
type formWriter struct {
	w   *multipart.Writer
	err error
}

func (f *formWriter) field(key, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(key, value)
}

func (f *formWriter) optional(key string, value *string) {
	if value == nil {
		return
	}
	f.field(key, *value)
}

func (f *formWriter) file(key string, upload *FileUpload) {
	if f.err != nil || upload == nil {
		return
	}
	part, err := f.w.CreateFormFile(key, upload.Name)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = io.Copy(part, upload.Reader)
}

func (f *formWriter) close() error {
	return f.err
}

// iconString flattens whatever the caller holds for an icon into the
// opaque string the server expects. Presentation objects carry a name
// or key; everything else falls back to its JSON form.
func iconString(icon any) string {
	switch v := icon.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case map[string]any:
		for _, key := range []string{"name", "key", "icon"} {
			if s, ok := v[key].(string); ok {
				return s
			}
		}
	}
	data, err := json.Marshal(icon)
	if err != nil {
		return fmt.Sprint(icon)
	}
	return string(data)
}
