package subtitle

import "regexp"

var (
	vttRangeRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}:\d{2}\.\d{3}) --> (\d{2}):(\d{2}:\d{2}\.\d{3})`,
	)
	srtTimecodeRegex = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}),(\d{3})`)
)

// ZeroHours rewrites the hour fields of the first VTT timecode range in line
// to 00, leaving every other byte unchanged. Lines without a full range pass
// through as-is; partial or malformed timecodes are plain text.
func ZeroHours(line string) string {
	m := vttRangeRegex.FindStringSubmatchIndex(line)
	if m == nil {
		return line
	}
	// splice 00 over the two hour groups, keep everything else
	return line[:m[2]] + "00" + line[m[3]:m[6]] + "00" + line[m[7]:]
}

// NormalizeSeparators rewrites every SRT timecode in line to use a period
// before the milliseconds instead of a comma. Hour values are not touched.
func NormalizeSeparators(line string) string {
	return srtTimecodeRegex.ReplaceAllString(line, "$1.$2")
}
