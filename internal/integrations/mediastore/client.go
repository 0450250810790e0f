package mediastore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/bestbuddies/grooming-service/internal/domain"
)

// Logger is the logging surface the client needs
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Client talks to the media store that keeps before/after photos and
// absence proof files
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a media store client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Upload stores one file and returns its descriptor. The size cap is
// enforced before any bytes go over the wire.
func (c *Client) Upload(ctx context.Context, filename string, contentType string, data []byte) (*UploadResult, error) {
	if len(data) > domain.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, filename, len(data), domain.MaxUploadBytes)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build multipart body: %v", ErrInternal, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("%w: failed to write multipart body: %v", ErrInternal, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to finalize multipart body: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/media", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if contentType != "" {
		req.Header.Set("X-Upload-Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// fall through to decoding
	case http.StatusRequestEntityTooLarge:
		return nil, ErrFileTooLarge
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// UploadWithGracefulDegradation stores a file, degrading to a skip when
// the media store is unreachable. Size violations still fail hard; they
// are a caller bug, not an outage.
func (c *Client) UploadWithGracefulDegradation(ctx context.Context, filename string, contentType string, data []byte) (*UploadResult, error) {
	c.log.Info("Uploading media file %s (%d bytes)", filename, len(data))

	result, err := c.Upload(ctx, filename, contentType, data)
	if err != nil {
		if err == ErrFileTooLarge {
			return nil, err
		}

		c.log.Error("Media store unavailable, applying graceful degradation for %s: %v", filename, err)
		return nil, fmt.Errorf("%w: file=%s, error=%v", ErrServiceDegraded, filename, err)
	}

	c.log.Info("Stored media file %s at %s", filename, result.URL)
	return result, nil
}

// Delete removes a stored object. Missing objects are not an error;
// deletes run on best effort during media clearing.
func (c *Client) Delete(ctx context.Context, mediaURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, mediaURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
