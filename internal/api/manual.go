package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/pkg/errors"
)

// ManualStatus tracks a manual through its indexing pipeline.
type ManualStatus string

const (
	ManualPending  ManualStatus = "pending"
	ManualIndexing ManualStatus = "indexing"
	ManualReady    ManualStatus = "ready"
	ManualFailed   ManualStatus = "failed"
)

// Manual is a reference document uploaded for a chatbot.
type Manual struct {
	ManualID         string       `json:"manual_id"`
	ChatbotID        string       `json:"chatbot_id"`
	DisplayName      string       `json:"display_name"`
	OriginalFilename string       `json:"original_filename"`
	Status           ManualStatus `json:"status"`
	CreatedAt        string       `json:"created_at"`
}

// UploadManual uploads a PDF for a chatbot as multipart form data.
func (c *Client) UploadManual(ctx context.Context, chatbotID, displayName, filename string, content io.Reader) (*Manual, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, errors.Wrap(err, "creating form file")
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, errors.Wrap(err, "copying file content")
	}
	if err := writer.WriteField("display_name", displayName); err != nil {
		return nil, errors.Wrap(err, "writing display name field")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "finalizing multipart body")
	}

	path := "/set/manuals?chatbot_id=" + url.QueryEscape(chatbotID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	manual := &Manual{}
	if err := c.send(request, manual); err != nil {
		return nil, err
	}
	return manual, nil
}

// ListManuals returns the manuals uploaded for a chatbot.
func (c *Client) ListManuals(ctx context.Context, chatbotID string) ([]Manual, error) {
	data := &struct {
		Manuals []Manual `json:"manuals"`
	}{}
	path := "/set/manuals?chatbot_id=" + url.QueryEscape(chatbotID)
	if err := c.do(ctx, http.MethodGet, path, nil, data); err != nil {
		return nil, err
	}
	return data.Manuals, nil
}

// DeleteManual removes an uploaded manual.
func (c *Client) DeleteManual(ctx context.Context, manualID string) error {
	return c.do(ctx, http.MethodDelete, "/set/manuals/"+manualID, nil, nil)
}
