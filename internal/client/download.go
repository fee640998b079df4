package client

import (
	"context"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	apperrors "github.com/disamze/eduplatform-frontend/pkg/errors"
)

// Download is a materialized binary payload. Filename honors the
// Content-Disposition header over the resource's stored fileName.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DownloadResource fetches the binary stream for a resource. It fails fast
// with AuthRequired before any network call when no token is held.
func (c *Client) DownloadResource(ctx context.Context, id, fallbackName string) (*Download, error) {
	if !c.HasToken() {
		return nil, apperrors.AuthRequired()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/resources/"+id+"/download", nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "build request")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NetworkFailure(err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.DownloadFailed(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NetworkFailure(err)
	}

	filename := dispositionFilename(resp.Header.Get("Content-Disposition"))
	if filename == "" {
		filename = fallbackName
	}
	if filename == "" {
		filename = "resource-" + id
	}

	return &Download{
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// SaveDownload writes a downloaded payload into dir under its resolved
// filename and returns the full path.
func SaveDownload(dl *Download, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "create download directory")
	}
	path := filepath.Join(dir, filepath.Base(dl.Filename))
	if err := os.WriteFile(path, dl.Data, 0o644); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, http.StatusInternalServerError, "write download")
	}
	return path, nil
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
