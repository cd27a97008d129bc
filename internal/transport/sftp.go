package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/sftp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh"
)

// SFTPUploader puts the artifact into a directory on an SFTP host using
// password authentication.
type SFTPUploader struct {
	Host     string
	Username string
	Password string
	Dir      string

	log zerolog.Logger
}

func (u *SFTPUploader) Upload(ctx context.Context, localPath string) error {
	u.log.Info().Str("host", u.Host).Msg("uploading zip file via SFTP")

	addr := u.Host
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "22")
	}

	sshCfg := &ssh.ClientConfig{
		User: u.Username,
		Auth: []ssh.AuthMethod{ssh.Password(u.Password)},
		// The drop box host key is not pinned anywhere we control.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         30 * time.Second,
	}

	dialer := net.Dialer{Timeout: sshCfg.Timeout}
	netConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("sftp dial: %w", err)
	}
	sshConn, chans, reqs, err := ssh.NewClientConn(netConn, addr, sshCfg)
	if err != nil {
		netConn.Close()
		return fmt.Errorf("sftp handshake: %w", err)
	}
	conn := ssh.NewClient(sshConn, chans, reqs)
	defer conn.Close()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("sftp session: %w", err)
	}
	defer client.Close()

	src, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer src.Close()

	remotePath := path.Join(u.Dir, filepath.Base(localPath))
	dst, err := client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp create %s: %w", remotePath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("sftp put: %w", err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp close: %w", err)
	}

	u.log.Info().Str("remote_path", remotePath).Msg("upload successful")
	return nil
}
