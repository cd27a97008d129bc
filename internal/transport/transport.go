// Package transport uploads the packaged artifact to the reporting
// platform's drop box. Two interchangeable protocols are supported; a
// failed upload is reported but never unwinds already-written output.
package transport

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ksdtech/dd-importer/internal/config"
)

// Uploader sends one local artifact to the remote store.
type Uploader interface {
	Upload(ctx context.Context, localPath string) error
}

// New selects the uploader for the configured protocol.
func New(cfg *config.Config, log zerolog.Logger) Uploader {
	if cfg.UploadProtocol == "sftp" {
		return &SFTPUploader{
			Host:     cfg.SFTPHost,
			Username: cfg.Username,
			Password: cfg.Password,
			Dir:      cfg.SFTPPath,
			log:      log.With().Str("component", "sftp_upload").Logger(),
		}
	}
	return &WebDAVUploader{
		Host:     cfg.WebDAVHost,
		Protocol: cfg.WebDAVProtocol,
		Path:     cfg.WebDAVPath,
		Username: cfg.Username,
		Password: cfg.Password,
		log:      log.With().Str("component", "webdav_upload").Logger(),
	}
}
