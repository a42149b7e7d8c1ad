// Package cmd provides command-line interface functionality for ccd2iso.
// ccd2iso converts CloneCD raw disc images (.img) into ISO 9660 images
// (.iso) by stripping the per-sector header and error-correction overhead.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the ccd2iso application.
var rootCmd = &cobra.Command{
	Use:   "ccd2iso",
	Short: "Convert CloneCD .img files to ISO 9660 .iso files",
	Long: `ccd2iso - Convert CloneCD raw disc images to ISO 9660 images.

A CloneCD image stores every raw 2352-byte CD sector, including sync
patterns, addressing and error-correction data. ccd2iso extracts the
2048-byte user data of each Mode 1 or Mode 2 sector and concatenates it
into a plain ISO 9660 bytestream.

Commands:
  convert   Convert a .img file to a .iso file
  info      Inspect a .img file and report its sector composition

Examples:
  ccd2iso convert disc.img
  ccd2iso convert -f disc.img output.iso
  ccd2iso info disc.img

Use 'ccd2iso [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
