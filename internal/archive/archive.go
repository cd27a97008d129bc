// Package archive packages the emitted output files into the upload
// artifact and keeps a dated copy of every run.
package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Packager zips output files and files a dated archive copy.
type Packager struct {
	log zerolog.Logger
}

func NewPackager(log zerolog.Logger) *Packager {
	return &Packager{log: log.With().Str("component", "archive").Logger()}
}

// Package zips every *.txt in outputDir into <name>.zip inside outputDir
// (flat, no internal paths), then copies the zip into
// <baseDir>/archives/<YYYY-MM-DD>/. Returns the zip path.
func (p *Packager) Package(outputDir, baseDir, name string, today time.Time) (string, error) {
	p.log.Info().Msg("zipping files")

	zipPath := filepath.Join(outputDir, name+".zip")
	if err := os.Remove(zipPath); err != nil && !os.IsNotExist(err) {
		return "", err
	}
	if err := p.writeZip(zipPath, outputDir); err != nil {
		return "", err
	}

	p.log.Info().Msg("archiving zip file")
	archiveDir := filepath.Join(baseDir, "archives", today.Format("2006-01-02"))
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return "", err
	}
	if err := copyFile(zipPath, filepath.Join(archiveDir, name+".zip")); err != nil {
		return "", err
	}
	return zipPath, nil
}

func (p *Packager) writeZip(zipPath, outputDir string) error {
	f, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	matches, err := filepath.Glob(filepath.Join(outputDir, "*.txt"))
	if err != nil {
		return err
	}
	for _, path := range matches {
		p.log.Info().Str("file", filepath.Base(path)).Msg("adding to zip file")
		if err := addToZip(zw, path); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Close()
}

func addToZip(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := zw.Create(filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
