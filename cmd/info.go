// Package cmd provides command-line interface for CloneCD image inspection.
// This file contains the info command, which reports the sector composition
// of a .img file without converting it.
package cmd

import (
	"fmt"
	"os"

	"github.com/jkmartindale/ccd2iso/pkg"
	"github.com/jkmartindale/ccd2iso/pkg/common"
	"github.com/spf13/cobra"
)

// infoCmd scans a CloneCD image file and prints a YAML report.
// The scan covers the whole file, counting Mode 1, Mode 2 and unrecognized
// sectors and flagging multisession markers and truncated tails.
var infoCmd = &cobra.Command{
	Use:   "info [input.img]",
	Short: "Inspect a CloneCD image file and report its sector composition",
	Long: `Inspect a CloneCD image file (.img) and report its sector composition.

The report is printed as YAML and includes:
  - total number of complete 2352-byte sectors
  - per-mode sector counts (Mode 1, Mode 2, unrecognized)
  - whether a multisession marker is present
  - trailing bytes that do not form a complete sector
  - total user data size a conversion would produce

Example:
  ccd2iso info disc.img`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		processor := pkg.NewCCDProcessor()

		info, err := processor.Inspect(inputFile)
		if err != nil {
			return fmt.Errorf("failed to inspect image: %w", err)
		}

		if err := processor.ExportYAML(info, os.Stdout); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		return nil
	},
}

// init initializes the info command with its flags.
func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output with debug messages")
}
