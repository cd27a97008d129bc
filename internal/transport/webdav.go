package transport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// WebDAVUploader PUTs the artifact to a WebDAV collection with basic auth.
type WebDAVUploader struct {
	Host     string
	Protocol string
	Path     string
	Username string
	Password string

	log zerolog.Logger
}

func (u *WebDAVUploader) Upload(ctx context.Context, localPath string) error {
	u.log.Info().Str("host", u.Host).Msg("uploading zip file via WebDAV")

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	remote := url.URL{
		Scheme: u.Protocol,
		Host:   u.Host,
		Path:   path.Join("/", u.Path, filepath.Base(localPath)),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, remote.String(), f)
	if err != nil {
		return err
	}
	req.SetBasicAuth(u.Username, u.Password)
	req.ContentLength = info.Size()

	client := &http.Client{Timeout: 5 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("webdav put: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		u.log.Info().Int("status", resp.StatusCode).Msg("upload successful")
		return nil
	default:
		return fmt.Errorf("webdav put: unexpected status %d", resp.StatusCode)
	}
}
