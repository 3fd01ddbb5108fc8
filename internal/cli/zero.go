package cli

import (
	"github.com/spf13/cobra"

	"subzero/internal/batch"
)

var zeroCmd = &cobra.Command{
	Use:   "zero [input_dir] [output_dir]",
	Short: "Zero the hour fields of WebVTT timecodes",
	Long: `Process every .vtt file in the input directory, forcing the hour
fields of each timecode range to 00, and write the results to the output
directory.

Examples:
  subzero zero ./subs ./fixed
  subzero zero ./subs ./fixed --sequential --prefix ep
  subzero zero ./subs ./fixed --rename
  subzero zero ./subs ./fixed --parallel=false`,
	Args: cobra.ExactArgs(2),
	RunE: runZero,
}

func init() {
	rootCmd.AddCommand(zeroCmd)
}

func runZero(cmd *cobra.Command, args []string) error {
	return runJob(cmd, batch.OperationZeroHour, args[0], args[1])
}
