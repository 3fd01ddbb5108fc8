package batch

import "subzero/internal/subtitle"

// the kind of conversion a job performs
type Operation string

const (
	OperationZeroHour Operation = "zero-hour"
	OperationSRTToVTT Operation = "srt-to-vtt"
)

func (o Operation) Valid() bool {
	return o == OperationZeroHour || o == OperationSRTToVTT
}

// SourceFormat reports the subtitle format the operation's input files
// must have.
func (o Operation) SourceFormat() subtitle.Format {
	if o == OperationSRTToVTT {
		return subtitle.FormatSRT
	}
	return subtitle.FormatVTT
}

// lifecycle of a batch job
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateComplete State = "complete"
)

// one requested conversion over an input directory
type Job struct {
	Operation Operation
	InputDir  string
	OutputDir string

	// naming policy: sequential numbering wins over interactive rename
	SequentialNames bool
	Prefix          string
	Rename          bool

	// run conversions across a worker pool when more than one file matches
	Parallel bool
}

// one input file paired with its computed output path; Index is 1-based in
// enumeration order
type FileTask struct {
	Index      int
	InputPath  string
	OutputPath string
}
