// Package tabfile reads and writes the SIS tab-delimited export format:
// unquoted fields, newline-terminated records, optionally headerless.
package tabfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Category describes one source-file family. Signature is the byte prefix a
// header row starts with; some export variants omit the header row entirely,
// and for those Fallback supplies the hand-maintained header list. A nil
// Fallback means the file must carry its own header row.
type Category struct {
	Signature string
	Fallback  []string
}

// NormalizeHeader canonicalizes one raw header token: a leading bracketed
// tag like "[39]" is stripped, the rest is lower-cased, spaces become
// underscores and anything outside [a-z0-9_] is dropped. So
// "[39]Alternate School Number" becomes "alternate_school_number".
func NormalizeHeader(raw string) string {
	h := strings.ReplaceAll(strings.ToLower(raw), " ", "_")
	if i := strings.Index(h, "]"); i > 0 {
		h = h[i+1:]
	}
	var b strings.Builder
	for i := 0; i < len(h); i++ {
		c := h[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func normalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// ReadRows streams every record of the file at path to fn as a map keyed by
// normalized header name. If the file does not start with the category's
// signature, the fallback header list is used and the first line is treated
// as data. Returning an error from fn aborts the scan.
func ReadRows(path string, cat Category, fn func(row map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var headers []string
	first := true
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if first {
			first = false
			if strings.HasPrefix(line, cat.Signature) || cat.Fallback == nil {
				headers = normalizeHeaders(strings.Split(line, "\t"))
				continue
			}
			headers = normalizeHeaders(cat.Fallback)
		}
		fields := strings.Split(line, "\t")
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			} else {
				row[h] = ""
			}
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}
