// Package ccd provides structures and conversion logic for CloneCD raw disc
// images. This file contains the streaming image conversion engine.
package ccd

import (
	"context"
	"errors"
	"io"
)

// Progress receives the running count of sectors successfully written to the
// destination. Implementations must not affect conversion correctness; a nil
// Progress disables reporting entirely.
type Progress interface {
	SectorWritten(count int64)
}

// ProgressFunc adapts an ordinary function to the Progress interface.
type ProgressFunc func(count int64)

// SectorWritten calls f(count).
func (f ProgressFunc) SectorWritten(count int64) {
	f(count)
}

// Convert reads a CloneCD disc image from src sector by sector and writes the
// 2048-byte user data of each Mode 1 or Mode 2 sector to dst, producing an
// ISO 9660 bytestream. It processes one sector at a time with a single fixed
// buffer, so memory use stays constant regardless of image size.
//
// Conversion ends successfully at a clean end of stream. Any truncated
// record, session marker, unrecognized mode or I/O failure aborts the
// conversion immediately with one of the error types in this package; no
// destination cleanup is attempted. Sectors already converted remain written.
//
// The context is checked before each sector read, so an in-flight conversion
// can be cancelled between sectors; the context's error is returned as-is.
func Convert(ctx context.Context, src io.Reader, dst io.Writer, progress Progress) error {
	buf := make([]byte, SectorSize)
	for index := int64(0); ; index++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := io.ReadFull(src, buf)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return &IncompleteSectorError{Index: index, BytesRead: n, Expected: SectorSize}
		case err != nil:
			return &ReadError{Index: index, Err: err}
		}

		sector := DecodeSector(buf)
		switch sector.Mode() {
		case Mode1, Mode2:
			data, _ := sector.Data()
			written, err := dst.Write(data)
			if err != nil {
				return &WriteError{Index: index, Err: err}
			}
			if written != DataSize {
				return &WriteError{Index: index, Err: io.ErrShortWrite}
			}
		case SessionMarker:
			return &SessionMarkerError{Index: index}
		default:
			return &UnrecognizedSectorModeError{Index: index, Mode: sector.Mode()}
		}

		if progress != nil {
			progress.SectorWritten(index + 1)
		}
	}
}
