// Package extractor locates a marker substring in source text and returns
// the backtick-delimited region that follows it.
package extractor

import (
	"errors"
	"fmt"
	"strings"
)

const (
	delimiter = '`'
	escape    = '\\'
)

var (
	// ErrMarkerNotFound is returned when the marker substring does not
	// occur in the source text.
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrDelimiterNotFound is returned when the scan reaches end of input
	// without an unescaped closing backtick.
	ErrDelimiterNotFound = errors.New("no closing backtick found")
)

// Result represents one extracted template-literal region
type Result struct {
	Content string // region body, terminating backtick excluded
	Start   int    // byte offset just past the marker
	End     int    // byte offset of the terminating backtick
}

// Extract returns the region between the first occurrence of marker and the
// next unescaped backtick in src. The content is returned verbatim: escape
// characters are kept, nothing is unescaped or validated.
func Extract(src, marker string) (*Result, error) {
	idx := strings.Index(src, marker)
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}
	start := idx + len(marker)

	// A backslash toggles the escape flag; runs are not counted. An
	// escaped backtick clears the flag and the scan continues.
	escaped := false
	for i := start; i < len(src); i++ {
		switch {
		case src[i] == escape:
			escaped = !escaped
		case src[i] == delimiter && !escaped:
			return &Result{Content: src[start:i], Start: start, End: i}, nil
		default:
			escaped = false
		}
	}
	return nil, ErrDelimiterNotFound
}
