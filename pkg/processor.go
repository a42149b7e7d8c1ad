// Package pkg provides functionality for processing CloneCD disc image files.
// This file contains the conversion processor that wraps the streaming engine
// with file management, progress display and cleanup.
package pkg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/jkmartindale/ccd2iso/pkg/ccd"
	"github.com/jkmartindale/ccd2iso/pkg/common"
)

// CCDProcessor handles CloneCD image operations (convert/inspect)
type CCDProcessor struct {
	// ShowProgress enables the terminal progress bar during conversion.
	ShowProgress bool
}

// NewCCDProcessor creates a new CloneCD processor instance
func NewCCDProcessor() *CCDProcessor {
	return &CCDProcessor{ShowProgress: true}
}

// DefaultOutputPath derives the output .iso path from the input image path,
// replacing its extension.
func DefaultOutputPath(inputFile string) string {
	return strings.TrimSuffix(inputFile, filepath.Ext(inputFile)) + ".iso"
}

// Convert converts a CloneCD image file to an ISO 9660 file.
//
// The output is written to a temporary file next to outputFile and renamed
// into place only after the whole image converted successfully. On any
// failure or cancellation the temporary file is removed, leaving an existing
// output file untouched. An existing outputFile is only overwritten when
// force is set.
func (p *CCDProcessor) Convert(ctx context.Context, inputFile, outputFile string, force bool) error {
	src, err := os.Open(inputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToOpenImage, err)
	}
	defer src.Close()

	fileInfo, err := src.Stat()
	if err != nil {
		return common.FormatError(common.ErrFailedToStatImage, err)
	}
	totalSectors := fileInfo.Size() / ccd.SectorSize
	common.LogDebug(common.DebugSectorCount, fileInfo.Size(), totalSectors)

	if !force {
		if _, err := os.Stat(outputFile); err == nil {
			return fmt.Errorf("%s: %s", common.ErrOutputAlreadyExists, outputFile)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputFile), ".ccd2iso-*")
	if err != nil {
		return common.FormatError(common.ErrFailedToCreateTempFile, err)
	}
	common.LogDebug(common.DebugTempFileCreate, tmp.Name())

	var bar *pb.ProgressBar
	if p.ShowProgress {
		if total, err := common.SafeInt64ToInt(totalSectors); err == nil {
			bar = pb.StartNew(total)
		}
	}
	var written int64
	progress := ccd.ProgressFunc(func(count int64) {
		written = count
		if bar != nil {
			bar.SetCurrent(count)
		}
	})

	convErr := ccd.Convert(ctx, src, tmp, progress)
	if bar != nil {
		bar.Finish()
	}
	if convErr != nil {
		p.discardTemp(tmp)
		if errors.Is(convErr, context.Canceled) {
			return fmt.Errorf("%s: %w", common.ErrConversionCancelled, convErr)
		}
		return fmt.Errorf("%s: %w", common.ErrConversionFailed, convErr)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return common.FormatError(common.ErrFailedToFinalizeOutput, err)
	}
	if err := os.Rename(tmp.Name(), outputFile); err != nil {
		os.Remove(tmp.Name())
		return common.FormatError(common.ErrFailedToFinalizeOutput, err)
	}

	common.LogInfo(common.InfoConversionDone,
		written, common.FormatByteSize(written*ccd.DataSize), outputFile)
	return nil
}

// discardTemp closes and removes a temporary output file after a failed or
// cancelled conversion.
func (p *CCDProcessor) discardTemp(tmp *os.File) {
	tmp.Close()
	if err := os.Remove(tmp.Name()); err == nil {
		common.LogDebug(common.DebugTempFileRemoved, tmp.Name())
	}
}
