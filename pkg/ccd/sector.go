// Package ccd provides structures and conversion logic for CloneCD raw disc
// images. This file contains the fixed byte layout of a CloneCD sector record.
package ccd

import "fmt"

// Sector layout constants for CloneCD raw images
const (
	SectorSize    = 2352 // Full raw sector record size
	SyncSize      = 12   // Sync pattern size
	HeaderSize    = 4    // Header size (3 address bytes + 1 mode byte)
	DataSize      = 2048 // User data portion of a Mode 1 or Mode 2 sector
	SubHeaderSize = 8    // XA subheader size (Mode 2 only)
	EDCSize       = 4    // Error Detection Code size
	ECCSize       = 276  // Error Correction Code size
	ReservedSize  = 8    // Reserved area size (Mode 1 only)
)

// Byte offsets within a raw sector record
const (
	ModeOffset      = SyncSize + 3                          // 15: mode byte follows the MSF address
	Mode1DataOffset = SyncSize + HeaderSize                 // 16: Mode 1 data follows the header
	Mode2DataOffset = SyncSize + HeaderSize + SubHeaderSize // 24: Mode 2 data follows the XA subheader
)

// Recognized sector mode values
const (
	Mode1         = 0x01 // ISO 9660 Mode 1: data + EDC + reserved + ECC
	Mode2         = 0x02 // ISO 9660 Mode 2: subheader + data + EDC + ECC
	SessionMarker = 0xE2 // Session boundary marker (multisession image)
)

// Sector is a decoded view over a single raw 2352-byte sector record.
// It references the underlying buffer rather than copying it, so a Sector
// is only valid until the buffer is reused for the next record. Callers
// must pass exactly SectorSize bytes to DecodeSector.
type Sector struct {
	raw []byte
}

// DecodeSector reinterprets a raw 2352-byte record as a Sector.
func DecodeSector(raw []byte) Sector {
	return Sector{raw: raw}
}

// Sync returns the 12-byte synchronization pattern.
func (s Sector) Sync() []byte {
	return s.raw[:SyncSize]
}

// Address returns the BCD minute, second and frame fields of the sector header.
func (s Sector) Address() (minute, second, frame byte) {
	return s.raw[SyncSize], s.raw[SyncSize+1], s.raw[SyncSize+2]
}

// MSFString formats the sector's BCD minute, second and frame address as
// "MM:SS:FF".
func (s Sector) MSFString() string {
	minute, second, frame := s.Address()
	return fmt.Sprintf("%02x:%02x:%02x", minute, second, frame)
}

// Mode returns the sector mode byte.
func (s Sector) Mode() byte {
	return s.raw[ModeOffset]
}

// Data returns the 2048-byte user data window selected by the sector's mode
// byte, without copying. The second return value is false for mode values
// that carry no user data (session markers and unrecognized modes).
func (s Sector) Data() ([]byte, bool) {
	switch s.Mode() {
	case Mode1:
		return s.raw[Mode1DataOffset : Mode1DataOffset+DataSize], true
	case Mode2:
		return s.raw[Mode2DataOffset : Mode2DataOffset+DataSize], true
	default:
		return nil, false
	}
}
