// Package client is the typed transport layer over the education backend
// REST API. It owns the base URL and the bearer token, normalizes the
// success/error contract for JSON and multipart calls, and exposes one
// method per backend endpoint. There is no business logic here: nothing is
// retried and nothing is cached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// Store persists the bearer token across process runs.
type Store interface {
	Token() string
	SaveToken(token string) error
	DeleteToken() error
}

// Client talks to the backend. The token is effectively single-writer: only
// SetToken and ClearToken mutate it.
type Client struct {
	baseURL string
	http    *http.Client
	store   Store
	logger  *zap.Logger

	mu    sync.RWMutex
	token string
}

// New constructs a client, seeding the in-memory token from the store.
func New(baseURL string, timeout time.Duration, store Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		logger:  logger,
	}
	if store != nil {
		c.token = store.Token()
	}
	return c
}

// SetToken stores the bearer token in memory and in durable storage.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	if c.store != nil {
		return c.store.SaveToken(token)
	}
	return nil
}

// ClearToken drops the token from memory and durable storage.
func (c *Client) ClearToken() error {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	if c.store != nil {
		return c.store.DeleteToken()
	}
	return nil
}

// Token returns the current bearer token, "" when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// HasToken reports whether a bearer token is present.
func (c *Client) HasToken() bool {
	return c.Token() != ""
}

func (c *Client) authorize(req *http.Request) {
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// errorEnvelope is the backend's non-2xx JSON body convention.
type errorEnvelope struct {
	Error string `json:"error"`
}

// doJSON issues a JSON request and decodes the JSON response into out (when
// out is non-nil). Non-2xx responses become RequestFailed with the backend's
// error message, falling back to the HTTP status line.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	return c.execute(req, out)
}

// doMultipart issues a multipart request following the same auth and error
// contract as doJSON. The Content-Type carries the writer's boundary.
func (c *Client) doMultipart(ctx context.Context, method, path string, form *MultipartForm, out interface{}) error {
	contentType, body, err := form.finish()
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "build multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "build request")
	}
	req.Header.Set("Content-Type", contentType)
	c.authorize(req)

	return c.execute(req, out)
}

func (c *Client) execute(req *http.Request, out interface{}) error {
	c.logger.Debug("api_request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NetworkFailure(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NetworkFailure(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && envelope.Error != "" {
			return apperrors.RequestFailed(resp.StatusCode, envelope.Error)
		}
		return apperrors.RequestFailed(resp.StatusCode, "")
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "decode response")
	}
	return nil
}

// MultipartForm accumulates multipart fields and files for upload calls.
type MultipartForm struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewMultipartForm builds an empty multipart body.
func NewMultipartForm() *MultipartForm {
	f := &MultipartForm{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text field, recording the first error seen.
func (f *MultipartForm) Field(name, value string) *MultipartForm {
	if f.err == nil {
		f.err = f.writer.WriteField(name, value)
	}
	return f
}

// File streams a file part from the reader.
func (f *MultipartForm) File(field, filename string, r io.Reader) *MultipartForm {
	if f.err != nil {
		return f
	}
	part, err := f.writer.CreateFormFile(field, filename)
	if err != nil {
		f.err = err
		return f
	}
	if _, err := io.Copy(part, r); err != nil {
		f.err = fmt.Errorf("copy file part: %w", err)
	}
	return f
}

func (f *MultipartForm) finish() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.writer.Close(); err != nil {
		return "", nil, err
	}
	return f.writer.FormDataContentType(), &f.buf, nil
}
