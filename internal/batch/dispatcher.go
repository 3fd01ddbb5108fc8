package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"subzero/internal/logging"
	"subzero/internal/subtitle"
)

// reported when Run is called while another job is still in progress
var ErrJobRunning = errors.New("a batch job is already running")

const (
	minWorkers = 2
	maxWorkers = 4
)

// converts a single subtitle file
type FileConverter interface {
	ZeroHourVTT(src, dst string) error
	SRTToVTT(src, dst string) error
}

// supplies replacement names under the rename policy
type Renamer interface {
	Rename(original string) (string, error)
}

// receives a progress update after each task completes
type Reporter interface {
	Progress(fraction float64, processed, failed int)
}

// collaborators for a Dispatcher; Renamer is only required for jobs using
// the rename policy
type Options struct {
	Logger   *logging.Logger
	Renamer  Renamer
	Reporter Reporter
}

// runs batch jobs over directories of subtitle files
type Dispatcher struct {
	converter FileConverter
	renamer   Renamer
	reporter  Reporter
	logger    *logging.Logger

	mu    sync.Mutex
	state State
}

func NewDispatcher(converter FileConverter, opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Dispatcher{
		converter: converter,
		renamer:   opts.Renamer,
		reporter:  opts.Reporter,
		logger:    logger,
		state:     StateIdle,
	}
}

// State reports the dispatcher's current job state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Run executes one batch job and blocks until it finishes. A second call
// while a job is in progress fails with ErrJobRunning; a finished dispatcher
// accepts new jobs. There is no mid-batch cancellation: once dispatched,
// every queued file is processed. Per-file conversion failures are folded
// into the Result, not returned as an error.
func (d *Dispatcher) Run(job Job) (*Result, error) {
	if err := d.start(); err != nil {
		return nil, err
	}
	defer d.finish()

	if err := d.validate(job); err != nil {
		return nil, err
	}

	tasks, err := d.prepareTasks(job)
	if err != nil {
		return nil, err
	}

	if len(tasks) == 0 {
		d.logger.Infow("No matching files found", "input_dir", job.InputDir)
		return &Result{}, nil
	}

	d.logger.Infow("Dispatching batch job",
		"operation", string(job.Operation),
		"files", len(tasks),
		"parallel", job.Parallel,
	)

	result := &Result{Total: len(tasks)}
	if job.Parallel && len(tasks) > 1 {
		d.runParallel(job, tasks, result)
	} else {
		d.runSequential(job, tasks, result)
	}

	d.logger.Infow("Batch job complete",
		"processed", result.Processed,
		"failed", result.Failed,
	)

	return result, nil
}

func (d *Dispatcher) start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == StateRunning {
		return ErrJobRunning
	}
	d.state = StateRunning
	return nil
}

func (d *Dispatcher) finish() {
	d.mu.Lock()
	d.state = StateComplete
	d.mu.Unlock()
}

func (d *Dispatcher) validate(job Job) error {
	if !job.Operation.Valid() {
		return fmt.Errorf("unknown operation %q", job.Operation)
	}

	info, err := os.Stat(job.InputDir)
	if err != nil {
		return fmt.Errorf("invalid input directory %s: %w", job.InputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path %s is not a directory", job.InputDir)
	}

	if err := os.MkdirAll(job.OutputDir, 0755); err != nil {
		return fmt.Errorf(
			"could not create output directory %s: %w",
			job.OutputDir, err,
		)
	}

	if job.Rename && !job.SequentialNames && d.renamer == nil {
		return fmt.Errorf("rename policy requires a renamer")
	}
	return nil
}

// prepareTasks enumerates matching files in name order and computes one
// output path per file. Rename prompts happen here, sequentially, so no
// prompt is ever issued while conversions run.
func (d *Dispatcher) prepareTasks(job Job) ([]FileTask, error) {
	entries, err := os.ReadDir(job.InputDir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read input directory %s: %w",
			job.InputDir, err,
		)
	}

	ext := subtitle.ExtensionForFormat(job.Operation.SourceFormat())

	var tasks []FileTask
	seen := make(map[string]string)
	index := 0
	for _, entry := range entries {
		name := entry.Name()
		if !subtitle.HasExtension(name, ext) {
			continue
		}
		index++

		outName, err := d.outputName(job, name, index)
		if err != nil {
			return nil, err
		}

		outPath := filepath.Join(job.OutputDir, outName)
		if first, ok := seen[outPath]; ok {
			d.logger.Warnw("Output path collision, last writer wins",
				"output", outPath,
				"first", first,
				"second", name,
			)
		}
		seen[outPath] = name

		tasks = append(tasks, FileTask{
			Index:      index,
			InputPath:  filepath.Join(job.InputDir, name),
			OutputPath: outPath,
		})
	}
	return tasks, nil
}

func (d *Dispatcher) outputName(job Job, name string, index int) (string, error) {
	base := DeriveBase(name, job.Operation)
	switch {
	case job.SequentialNames:
		return SequentialName(job.Prefix, index), nil
	case job.Rename:
		supplied, err := d.renamer.Rename(base)
		if err != nil {
			return "", fmt.Errorf("rename prompt failed for %s: %w", name, err)
		}
		return RenamedName(base, supplied, index), nil
	default:
		return DefaultName(base, index), nil
	}
}

func (d *Dispatcher) runSequential(job Job, tasks []FileTask, result *Result) {
	for _, task := range tasks {
		err := d.convert(job.Operation, task)
		d.report(result, err)
	}
}

func (d *Dispatcher) runParallel(job Job, tasks []FileTask, result *Result) {
	workers := workerCount()
	if workers > len(tasks) {
		workers = len(tasks)
	}

	workChan := make(chan FileTask, len(tasks))
	resultChan := make(chan error, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range workChan {
				resultChan <- d.convert(job.Operation, task)
			}
		}()
	}

	for _, task := range tasks {
		workChan <- task
	}
	close(workChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// single collection point: only this loop touches the counters
	for err := range resultChan {
		d.report(result, err)
	}
}

func (d *Dispatcher) convert(op Operation, task FileTask) error {
	var err error
	if op == OperationSRTToVTT {
		err = d.converter.SRTToVTT(task.InputPath, task.OutputPath)
	} else {
		err = d.converter.ZeroHourVTT(task.InputPath, task.OutputPath)
	}
	if err != nil {
		d.logger.Errorw("File conversion failed",
			"input", task.InputPath,
			"output", task.OutputPath,
			"error", err,
		)
		return err
	}

	d.logger.Debugw("File converted",
		"input", task.InputPath,
		"output", task.OutputPath,
	)
	return nil
}

func (d *Dispatcher) report(result *Result, taskErr error) {
	progress := result.record(taskErr != nil)
	if d.reporter != nil {
		d.reporter.Progress(progress, result.Processed, result.Failed)
	}
}

func workerCount() int {
	n := runtime.NumCPU()
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < minWorkers {
		n = minWorkers
	}
	return n
}
