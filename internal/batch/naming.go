package batch

import (
	"fmt"
	"strings"

	"subzero/internal/subtitle"
)

// output files always use the VTT extension
var outputExt = subtitle.ExtensionForFormat(subtitle.FormatVTT)

// DeriveBase strips the source extension from a file name. Zero-hour inputs
// named like downloaded recordings (name.mp4.vtt) lose the whole compound
// suffix. The strip is case-sensitive and applies to trailing suffixes only.
func DeriveBase(name string, op Operation) string {
	if op == OperationSRTToVTT {
		return strings.TrimSuffix(name, ".srt")
	}
	if strings.HasSuffix(name, ".mp4.vtt") {
		return strings.TrimSuffix(name, ".mp4.vtt")
	}
	return strings.TrimSuffix(name, ".vtt")
}

// SequentialName yields {prefix}{index}.vtt. The prefix is trimmed and may
// be empty; the index is not zero-padded.
func SequentialName(prefix string, index int) string {
	return fmt.Sprintf("%s%d%s", strings.TrimSpace(prefix), index, outputExt)
}

// RenamedName yields {supplied}_{index}.vtt, or {base}.vtt with no index
// when the supplied name is blank. Distinct inputs may map to the same
// output name; the last writer wins.
func RenamedName(base, supplied string, index int) string {
	supplied = strings.TrimSpace(supplied)
	if supplied == "" {
		return base + outputExt
	}
	return fmt.Sprintf("%s_%d%s", supplied, index, outputExt)
}

// DefaultName yields {base}_{index}.vtt.
func DefaultName(base string, index int) string {
	return fmt.Sprintf("%s_%d%s", base, index, outputExt)
}
