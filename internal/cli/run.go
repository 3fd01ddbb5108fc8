package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"subzero/internal/batch"
	"subzero/internal/subtitle"
)

// builds the job from flags and config, wires the collaborators, and runs
// the batch
func runJob(cmd *cobra.Command, op batch.Operation, inputDir, outputDir string) error {
	sequential, _ := cmd.Flags().GetBool("sequential")
	rename, _ := cmd.Flags().GetBool("rename")

	// config pre-fills these; an explicit flag wins
	prefix := cfg.Prefix
	if cmd.Flags().Changed("prefix") {
		prefix, _ = cmd.Flags().GetString("prefix")
	}
	parallel := cfg.Parallel
	if cmd.Flags().Changed("parallel") {
		parallel, _ = cmd.Flags().GetBool("parallel")
	}

	job := batch.Job{
		Operation:       op,
		InputDir:        inputDir,
		OutputDir:       outputDir,
		SequentialNames: sequential,
		Prefix:          prefix,
		Rename:          rename,
		Parallel:        parallel,
	}

	logger.Infow("Starting batch job",
		"operation", string(op),
		"input_dir", inputDir,
		"output_dir", outputDir,
		"parallel", parallel,
	)

	dispatcher := batch.NewDispatcher(subtitle.NewConverter(logger), batch.Options{
		Logger:   logger,
		Renamer:  newTerminalRenamer(),
		Reporter: &progressPrinter{out: os.Stdout},
	})

	result, err := dispatcher.Run(job)
	if err != nil {
		return fmt.Errorf("batch job failed: %w", err)
	}

	if result.Total == 0 {
		fmt.Println("No matching files found in the input directory.")
		return nil
	}

	fmt.Printf("Processing complete. Processed: %d, Failed: %d\n",
		result.Processed, result.Failed)

	return nil
}
