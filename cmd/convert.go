// Package cmd provides command-line interface for CloneCD image conversion.
// This file contains the convert command, which turns a .img file into a
// .iso file with safe temporary-file handling and interrupt support.
package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jkmartindale/ccd2iso/pkg"
	"github.com/jkmartindale/ccd2iso/pkg/common"
	"github.com/spf13/cobra"
)

// convertCmd converts a CloneCD image file to an ISO 9660 file.
// Output goes to a temporary file that is renamed into place only when the
// whole image converted successfully, so an interrupted or failed run never
// leaves a half-written .iso behind.
var convertCmd = &cobra.Command{
	Use:   "convert [input.img] [output.iso]",
	Short: "Convert a CloneCD image file to an ISO 9660 file",
	Long: `Convert a CloneCD image file (.img) to an ISO 9660 file (.iso).

When the output path is omitted it defaults to the input path with its
extension replaced by .iso. An existing output file is never overwritten
unless --force is passed.

The conversion stops with an error on truncated images, multisession
session markers and unrecognized sector modes; in every failure case the
partial output is removed.

Examples:
  ccd2iso convert disc.img
  ccd2iso convert disc.img /tmp/disc.iso
  ccd2iso convert -f disc.img
  ccd2iso convert -q disc.img`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		outputFile := pkg.DefaultOutputPath(inputFile)
		if len(args) == 2 {
			outputFile = args[1]
		}

		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("error getting force flag: %w", err)
		}
		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return fmt.Errorf("error getting quiet flag: %w", err)
		}

		// Ctrl-C cancels the conversion between sectors; the processor
		// removes the temporary output before returning.
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		processor := pkg.NewCCDProcessor()
		processor.ShowProgress = !quiet

		fmt.Printf("Converting CloneCD image: %s\n", inputFile)
		fmt.Printf("Output file: %s\n", outputFile)

		if err := processor.Convert(ctx, inputFile, outputFile, force); err != nil {
			return fmt.Errorf("failed to convert image: %w", err)
		}

		fmt.Println("Done.")
		return nil
	},
}

// init initializes the convert command with its flags.
func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolP("force", "f", false, "Overwrite the output file if it already exists")
	convertCmd.Flags().BoolP("quiet", "q", false, "Disable the progress bar")
	convertCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output with debug messages")
}
