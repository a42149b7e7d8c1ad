// Package pkg provides functionality for processing CloneCD disc image files.
// This file contains the image inspector that scans an image and reports its
// sector composition as YAML.
package pkg

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jkmartindale/ccd2iso/pkg/ccd"
	"github.com/jkmartindale/ccd2iso/pkg/common"
)

// Inspect scans a CloneCD image file sector by sector and summarizes its
// contents. Unlike Convert, the scan does not stop at session markers or
// unrecognized modes; it keeps counting so the report covers the whole file.
func (p *CCDProcessor) Inspect(inputFile string) (*ImageInfo, error) {
	src, err := os.Open(inputFile)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToOpenImage, err)
	}
	defer src.Close()

	fileInfo, err := src.Stat()
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToStatImage, err)
	}

	info := &ImageInfo{
		Source: inputFile,
		Size:   fileInfo.Size(),
	}

	buf := make([]byte, ccd.SectorSize)
	for {
		n, err := io.ReadFull(src, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			info.TrailingBytes = n
			break
		}
		if err != nil {
			return nil, common.FormatError(common.ErrFailedToScanImage, err)
		}

		sector := ccd.DecodeSector(buf)
		switch sector.Mode() {
		case ccd.Mode1:
			info.Mode1Sectors++
		case ccd.Mode2:
			info.Mode2Sectors++
		case ccd.SessionMarker:
			common.LogDebug(common.DebugSessionMarker, info.Sectors)
			info.Multisession = true
			info.OtherSectors++
		default:
			info.OtherSectors++
		}
		info.Sectors++
		info.LastAddress = sector.MSFString()
	}
	info.DataSize = (info.Mode1Sectors + info.Mode2Sectors) * ccd.DataSize

	common.LogDebug(common.DebugModeCounts, info.Mode1Sectors, info.Mode2Sectors)
	if info.Multisession {
		common.LogWarn(common.WarnMultisessionImage)
	}
	if info.TrailingBytes > 0 {
		common.LogWarn(common.WarnTrailingBytes, info.TrailingBytes)
	}

	return info, nil
}

// ExportYAML writes an image report to writer in YAML format.
func (p *CCDProcessor) ExportYAML(info *ImageInfo, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(info); err != nil {
		return common.FormatError(common.ErrFailedToEncodeReport, err)
	}
	return encoder.Close()
}
