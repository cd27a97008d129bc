package codes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDisabilityPattern means a special-ed program record's custom field did
// not contain the expected disability encoding. The run must halt on it:
// continuing would silently emit students with missing disability codes.
var ErrDisabilityPattern = errors.New("special-ed custom field does not match disability pattern")

// The custom field is a control-byte-delimited mini format. The primary
// disability is a three-digit group behind this marker, e.g.
// "\x11\x04\x03\x12\x00\x03320" for primary 320. A secondary group may
// precede it under a different marker ("\x11\x04\x06\x12\x00\x03280...")
// and is ignored.
const primaryDisabilityMarker = "\x11\x04\x03\x12\x00\x03"

// PrimaryDisability extracts the three-digit primary disability code from a
// special-ed program record's custom field.
func PrimaryDisability(custom string) (string, error) {
	i := strings.Index(custom, primaryDisabilityMarker)
	if i < 0 {
		return "", fmt.Errorf("no primary marker: %w", ErrDisabilityPattern)
	}
	start := i + len(primaryDisabilityMarker)
	if len(custom) < start+3 {
		return "", fmt.Errorf("truncated digit group: %w", ErrDisabilityPattern)
	}
	code := custom[start : start+3]
	for j := 0; j < 3; j++ {
		if code[j] < '0' || code[j] > '9' {
			return "", fmt.Errorf("bad digit group %q: %w", code, ErrDisabilityPattern)
		}
	}
	return code, nil
}
