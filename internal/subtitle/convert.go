package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"subzero/internal/logging"
)

// VTT file header
const vttHeader = "WEBVTT\n\n"

// applies per-line rewrites to subtitle files
type Converter struct {
	logger *logging.Logger
}

func NewConverter(logger *logging.Logger) *Converter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Converter{logger: logger}
}

// ZeroHourVTT copies the VTT file at src to dst, forcing the hour fields of
// each line's timecode range to 00. Lines are written in order as they are
// read; failure occurs only on I/O errors.
func (c *Converter) ZeroHourVTT(src, dst string) error {
	c.logger.Debugw("Zeroing VTT hours", "source", src, "destination", dst)
	return c.transformFile(src, dst, "", ZeroHours)
}

// SRTToVTT converts the SRT file at src into a VTT file at dst: the VTT
// header is written first, then each line with its timecode commas replaced
// by periods. Hour values are preserved.
func (c *Converter) SRTToVTT(src, dst string) error {
	c.logger.Debugw("Converting SRT to VTT", "source", src, "destination", dst)
	return c.transformFile(src, dst, vttHeader, NormalizeSeparators)
}

// transformFile streams src to dst line by line through transform. The
// destination is created or truncated; partial output may remain on error.
func (c *Converter) transformFile(
	src, dst, header string,
	transform func(string) string,
) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := ensureDir(dst); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	writer := bufio.NewWriter(out)
	if header != "" {
		if _, err := writer.WriteString(header); err != nil {
			return fmt.Errorf("failed to write header to %s: %w", dst, err)
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := transform(scanner.Text())
		if _, err := writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write to %s: %w", dst, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %w", src, err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", dst, err)
	}
	return nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
