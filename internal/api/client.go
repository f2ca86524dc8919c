// Package api wraps HTTP calls to the upstream NGO backend. Every call is
// a single attempt; retrying is a full resubmission by the member. Callers
// own graceful degradation: the registration workflow treats any error
// from here as non-fatal.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"orbosis/pkg/types"

	"github.com/sirupsen/logrus"
)

// TokenSource yields the bearer token to attach, or "" to omit the
// Authorization header. The profile store's authToken entry backs it.
type TokenSource func(ctx context.Context) string

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	token      TokenSource
}

func New(baseURL string, timeout time.Duration, logger *logrus.Logger, token TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		token:      token,
	}
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Code, string(e.Body))
}

// ErrDecode wraps a 2xx response whose body is not the expected JSON.
var ErrDecode = errors.New("undecodable response body")

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// PostMultipart sends string fields plus file attachments as
// multipart/form-data. Empty field values are skipped, matching what the
// browser forms sent upstream.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]*types.Attachment, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	for name, attachment := range files {
		if attachment == nil {
			continue
		}

		part, err := writer.CreateFormFile(name, attachment.Filename)
		if err != nil {
			return fmt.Errorf("create form file %s: %w", name, err)
		}
		if _, err := part.Write(attachment.Data); err != nil {
			return fmt.Errorf("write form file %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, writer.FormDataContentType(), &buf, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	return c.do(ctx, method, path, "application/json", reader, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Code: resp.StatusCode, Body: respBody}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
