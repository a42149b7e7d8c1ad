// Package ccd provides structures and conversion logic for CloneCD raw disc
// images. This file contains the error types surfaced by the conversion engine.
package ccd

import "fmt"

// IncompleteSectorError reports that the source stream ended in the middle of
// a sector record. The image is truncated or is not a CloneCD image.
type IncompleteSectorError struct {
	Index     int64 // zero-based index of the incomplete sector
	BytesRead int   // bytes obtained for the record
	Expected  int   // bytes required for a complete record
}

func (e *IncompleteSectorError) Error() string {
	return fmt.Sprintf("sector %d is incomplete, with only %d bytes instead of %d",
		e.Index, e.BytesRead, e.Expected)
}

// SessionMarkerError reports that a session marker was reached. The image
// might contain multisession data; only the first session was exported.
type SessionMarkerError struct {
	Index int64 // zero-based index of the marker sector
}

func (e *SessionMarkerError) Error() string {
	return fmt.Sprintf("found a session marker at sector %d, this image might contain multisession data; only the first session was exported",
		e.Index)
}

// UnrecognizedSectorModeError reports a sector mode byte outside the
// supported set {1, 2, 0xE2}.
type UnrecognizedSectorModeError struct {
	Index int64 // zero-based index of the offending sector
	Mode  byte  // the unsupported mode value
}

func (e *UnrecognizedSectorModeError) Error() string {
	return fmt.Sprintf("unrecognized sector mode (%x) at sector %d", e.Mode, e.Index)
}

// ReadError reports an underlying I/O failure while reading a sector record,
// distinct from a clean end of stream.
type ReadError struct {
	Index int64
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read sector %d: %v", e.Index, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports an underlying I/O failure while writing a sector's
// payload to the destination, including short writes.
type WriteError struct {
	Index int64
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write sector %d payload: %v", e.Index, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
