// Package pkg provides functionality for processing CloneCD disc image files.
// This file contains shared data structures and interfaces.
package pkg

import (
	"context"
	"io"
)

// ImageInfo summarizes the contents of a CloneCD image file
type ImageInfo struct {
	Source        string `yaml:"source"`         // Path of the scanned image
	Size          int64  `yaml:"size"`           // Image file size in bytes
	Sectors       int64  `yaml:"sectors"`        // Number of complete 2352-byte sectors
	Mode1Sectors  int64  `yaml:"mode_1_sectors"` // Sectors carrying Mode 1 user data
	Mode2Sectors  int64  `yaml:"mode_2_sectors"` // Sectors carrying Mode 2 user data
	OtherSectors  int64  `yaml:"other_sectors"`  // Sectors with unrecognized mode bytes
	Multisession  bool   `yaml:"multisession"`   // True when a session marker was found
	LastAddress   string `yaml:"last_address"`   // MSF address of the last complete sector
	TrailingBytes int    `yaml:"trailing_bytes"` // Bytes left over after the last complete sector
	DataSize      int64  `yaml:"data_size"`      // Total user data bytes an ISO export would contain
}

// ImageConverter interface defines methods for converting CloneCD images
type ImageConverter interface {
	Convert(ctx context.Context, inputFile, outputFile string, force bool) error
}

// ImageInspector interface defines methods for inspecting CloneCD images
type ImageInspector interface {
	Inspect(inputFile string) (*ImageInfo, error)
	ExportYAML(info *ImageInfo, writer io.Writer) error
}

// ImageProcessor combines converter and inspector functionality
type ImageProcessor interface {
	ImageConverter
	ImageInspector
}
