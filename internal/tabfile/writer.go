package tabfile

import (
	"bufio"
	"os"
	"strings"
)

// Writer emits one tab-delimited output file with a single header row.
type Writer struct {
	f *os.File
	w *bufio.Writer
}

// Create opens path for writing and emits the header row.
func Create(path string, fields []string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := &Writer{f: f, w: bufio.NewWriter(f)}
	if err := w.WriteRow(fields); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// WriteRow writes one record.
func (w *Writer) WriteRow(values []string) error {
	if _, err := w.w.WriteString(strings.Join(values, "\t")); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes and closes the file. Safe to call more than once.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	err := w.w.Flush()
	cerr := w.f.Close()
	w.f = nil
	if err != nil {
		return err
	}
	return cerr
}
