// Package pkg provides tests for the CloneCD image inspector
package pkg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jkmartindale/ccd2iso/pkg/ccd"
	"gopkg.in/yaml.v3"
)

func TestInspect_CountsModes(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir,
		testSector(ccd.Mode1, 0x11),
		testSector(ccd.Mode2, 0x22),
		testSector(ccd.Mode1, 0x33),
	)

	info, err := quietProcessor().Inspect(input)
	if err != nil {
		t.Fatalf("Inspect() error = %v, want nil", err)
	}

	if info.Sectors != 3 {
		t.Errorf("Sectors = %d, want 3", info.Sectors)
	}
	if info.Mode1Sectors != 2 {
		t.Errorf("Mode1Sectors = %d, want 2", info.Mode1Sectors)
	}
	if info.Mode2Sectors != 1 {
		t.Errorf("Mode2Sectors = %d, want 1", info.Mode2Sectors)
	}
	if info.Multisession {
		t.Error("Multisession = true, want false")
	}
	if info.TrailingBytes != 0 {
		t.Errorf("TrailingBytes = %d, want 0", info.TrailingBytes)
	}
	if info.DataSize != 3*ccd.DataSize {
		t.Errorf("DataSize = %d, want %d", info.DataSize, 3*ccd.DataSize)
	}
	if info.Size != 3*ccd.SectorSize {
		t.Errorf("Size = %d, want %d", info.Size, 3*ccd.SectorSize)
	}
	if info.LastAddress != "00:00:00" {
		t.Errorf("LastAddress = %q, want %q", info.LastAddress, "00:00:00")
	}
}

func TestInspect_MultisessionAndUnknownModes(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir,
		testSector(ccd.Mode1, 0x11),
		testSector(ccd.SessionMarker, 0x00),
		testSector(0x7F, 0x00),
	)

	info, err := quietProcessor().Inspect(input)
	if err != nil {
		t.Fatalf("Inspect() error = %v, want nil", err)
	}

	if !info.Multisession {
		t.Error("Multisession = false, want true")
	}
	// The scan keeps counting past the session marker
	if info.Sectors != 3 {
		t.Errorf("Sectors = %d, want 3", info.Sectors)
	}
	if info.OtherSectors != 2 {
		t.Errorf("OtherSectors = %d, want 2", info.OtherSectors)
	}
	if info.DataSize != ccd.DataSize {
		t.Errorf("DataSize = %d, want %d", info.DataSize, ccd.DataSize)
	}
}

func TestInspect_TruncatedImage(t *testing.T) {
	dir := t.TempDir()
	truncated := testSector(ccd.Mode1, 0x22)[:300]
	input := writeTestImage(t, dir, testSector(ccd.Mode1, 0x11), truncated)

	info, err := quietProcessor().Inspect(input)
	if err != nil {
		t.Fatalf("Inspect() error = %v, want nil", err)
	}

	if info.Sectors != 1 {
		t.Errorf("Sectors = %d, want 1", info.Sectors)
	}
	if info.TrailingBytes != 300 {
		t.Errorf("TrailingBytes = %d, want 300", info.TrailingBytes)
	}
}

func TestExportYAML(t *testing.T) {
	dir := t.TempDir()
	input := writeTestImage(t, dir, testSector(ccd.Mode1, 0x11), testSector(ccd.Mode2, 0x22))

	processor := quietProcessor()
	info, err := processor.Inspect(input)
	if err != nil {
		t.Fatalf("Inspect() error = %v, want nil", err)
	}

	var buf bytes.Buffer
	if err := processor.ExportYAML(info, &buf); err != nil {
		t.Fatalf("ExportYAML() error = %v, want nil", err)
	}

	output := buf.String()
	if !strings.Contains(output, "mode_1_sectors: 1") {
		t.Errorf("YAML report should contain mode_1_sectors, got:\n%s", output)
	}
	if !strings.Contains(output, "mode_2_sectors: 1") {
		t.Errorf("YAML report should contain mode_2_sectors, got:\n%s", output)
	}

	// The report must round-trip through the YAML decoder
	var decoded ImageInfo
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode YAML report: %v", err)
	}
	if decoded.Sectors != info.Sectors {
		t.Errorf("decoded Sectors = %d, want %d", decoded.Sectors, info.Sectors)
	}
}
