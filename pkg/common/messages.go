package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToOpenImage      = "failed to open image file"
	ErrFailedToStatImage      = "failed to get image file info"
	ErrFailedToCreateTempFile = "failed to create temporary output file"
	ErrFailedToFinalizeOutput = "failed to move output file into place"
	ErrOutputAlreadyExists    = "output file already exists, pass --force to overwrite it"
	ErrConversionFailed       = "conversion failed"
	ErrConversionCancelled    = "conversion cancelled"
	ErrFailedToScanImage      = "failed to scan image file"
	ErrFailedToEncodeReport   = "failed to encode image report"
)

// Info messages
const (
	InfoConversionDone  = "Converted %d sectors (%s) to %s"
	InfoImageScanned    = "Scanned %d sectors in %s"
	InfoOutputFinalized = "Output written to %s"
)

// Debug messages
const (
	DebugSectorCount     = "Image size %d bytes, %d full sectors"
	DebugTempFileCreate  = "Writing to temporary file %s"
	DebugTempFileRemoved = "Removed temporary file %s"
	DebugSessionMarker   = "Session marker at sector %d"
	DebugModeCounts      = "Mode 1: %d sectors, Mode 2: %d sectors"
)

// Warning messages
const (
	WarnTrailingBytes     = "Image has %d trailing bytes that do not form a complete sector"
	WarnMultisessionImage = "Image contains a session marker; only the first session is representable"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
