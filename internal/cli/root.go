package cli

import (
	"subzero/internal/config"
	"subzero/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfgPath string
	logFile string

	logger *logging.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "subzero",
	Short: "Batch subtitle timecode processor",
	Long: `Subzero batch-processes folders of subtitle files.

It zeroes the hour fields of WebVTT timecodes and converts SRT files
to WebVTT, with configurable output naming and parallel execution.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		path := logFile
		if path == "" {
			path = cfg.LogFile
		}
		if path != "" {
			logger, err = logging.NewFileLogger(verbose, path)
			return err
		}
		logger = logging.NewLogger(verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&cfgPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Append logs to this file as well")
	rootCmd.PersistentFlags().
		Bool("sequential", false, "Name outputs {prefix}{index}.vtt in processing order")
	rootCmd.PersistentFlags().
		StringP("prefix", "p", "", "Prefix for sequentially numbered output names")
	rootCmd.PersistentFlags().
		Bool("rename", false, "Prompt for a new name for each output file")
	rootCmd.PersistentFlags().
		Bool("parallel", true, "Convert files across a worker pool")
}
