package cli

import (
	"github.com/spf13/cobra"

	"subzero/internal/batch"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input_dir] [output_dir]",
	Short: "Convert SRT subtitle files to WebVTT",
	Long: `Convert every .srt file in the input directory to WebVTT format
and write the results to the output directory.

The WEBVTT header is added and timecode commas become periods; sequence
numbers and cue text pass through unchanged.

Examples:
  subzero convert ./srt ./vtt
  subzero convert ./srt ./vtt --sequential --prefix episode
  subzero convert ./srt ./vtt --rename`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	return runJob(cmd, batch.OperationSRTToVTT, args[0], args[1])
}
