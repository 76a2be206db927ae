package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Sro01/Documate/internal/configuration"
	"github.com/Sro01/Documate/internal/debug"
	"github.com/Sro01/Documate/store"
)

var log = debug.GetLogger()

// envelope is the uniform response wrapper used by every platform endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a structured failure returned by the platform.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Client calls the remote Documate platform. It attaches the stored bearer
// token to every request and clears the stored credentials when the server
// answers 401 or 403, forcing a fresh login.
type Client struct {
	httpClient *http.Client
	baseURL    string
	store      *store.Store
}

// New instantiates a client from configuration.
func New(config *configuration.Config, s *store.Store) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(config.RequestTimeout) * time.Second},
		baseURL:    strings.TrimSuffix(config.APIHost, "/"),
		store:      s,
	}
}

// do sends one JSON request and decodes the enveloped response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshaling request body")
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return c.send(request, out)
}

// send executes a prepared request and decodes the envelope.
func (c *Client) send(request *http.Request, out any) error {
	if token := c.store.LoadAccessToken(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Wrap(err, "sending request")
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		log.Warn("authentication rejected, clearing credentials", "status", response.StatusCode)
		c.store.ClearAuth()
	}

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	wrapper := envelope{}
	if err := json.Unmarshal(payload, &wrapper); err != nil {
		return errors.Wrapf(err, "unmarshaling response (status %d)", response.StatusCode)
	}
	if !wrapper.Success {
		if wrapper.Error != nil {
			return wrapper.Error
		}
		return errors.Errorf("request failed with status %d", response.StatusCode)
	}
	if out == nil || wrapper.Data == nil {
		return nil
	}
	if err := json.Unmarshal(wrapper.Data, out); err != nil {
		return errors.Wrap(err, "unmarshaling response data")
	}
	return nil
}
