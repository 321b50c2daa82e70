package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange is returned by ParseRange for headers that are malformed
// or request more than one range.
var ErrInvalidRange = errors.New("invalid range header")

// ByteRange is a single HTTP byte range. Start is nil for a suffix range
// ("bytes=-500", the last 500 bytes) and End is nil for an open range
// ("bytes=100-"). Both bounds are inclusive.
type ByteRange struct {
	Start *int64
	End   *int64
}

// ParseRange parses the value of an HTTP Range header. An empty header yields
// a nil range (the whole object). Multi-range requests are not supported.
func ParseRange(header string) (*ByteRange, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, nil
	}

	unit, spec, ok := strings.Cut(header, "=")
	if !ok || strings.TrimSpace(unit) != "bytes" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, header)
	}
	if strings.Contains(spec, ",") {
		return nil, fmt.Errorf("%w: multiple ranges are not supported", ErrInvalidRange)
	}

	rawStart, rawEnd, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok || (rawStart == "" && rawEnd == "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, header)
	}

	parse := func(s string) (*int64, error) {
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRange, header)
		}

		return &v, nil
	}

	start, err := parse(rawStart)
	if err != nil {
		return nil, err
	}
	end, err := parse(rawEnd)
	if err != nil {
		return nil, err
	}

	if start == nil && *end == 0 {
		return nil, fmt.Errorf("%w: empty suffix range", ErrInvalidRange)
	}
	if start != nil && end != nil && *end < *start {
		return nil, fmt.Errorf("%w: range end precedes start", ErrInvalidRange)
	}

	return &ByteRange{Start: start, End: end}, nil
}

// HeaderValue formats the range as an HTTP Range header value.
func (r ByteRange) HeaderValue() string {
	switch {
	case r.Start == nil:
		return fmt.Sprintf("bytes=-%d", *r.End)
	case r.End == nil:
		return fmt.Sprintf("bytes=%d-", *r.Start)
	default:
		return fmt.Sprintf("bytes=%d-%d", *r.Start, *r.End)
	}
}

// Resolve converts the range to absolute inclusive offsets within an object
// of the size given, clamping the end to the last byte. Ranges starting at or
// beyond the end of the object return ErrRangeNotSatisfiable.
func (r ByteRange) Resolve(size int64) (int64, int64, error) {
	if size <= 0 {
		return 0, 0, &RangeNotSatisfiableError{Size: max(size, 0)}
	}

	if r.Start == nil {
		suffix := min(*r.End, size)
		return size - suffix, size - 1, nil
	}

	start := *r.Start
	if start >= size {
		return 0, 0, &RangeNotSatisfiableError{Size: size}
	}

	end := size - 1
	if r.End != nil && *r.End < end {
		end = *r.End
	}

	return start, end, nil
}

// FormatContentRange builds a Content-Range header value for the inclusive
// offsets given.
func FormatContentRange(start int64, end int64, size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", start, end, size)
}
