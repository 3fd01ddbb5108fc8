package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// asks on the terminal for a replacement output name; a blank answer keeps
// the original name
type terminalRenamer struct {
	in  *bufio.Reader
	out io.Writer
}

func newTerminalRenamer() *terminalRenamer {
	return &terminalRenamer{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func (r *terminalRenamer) Rename(original string) (string, error) {
	fmt.Fprintf(r.out,
		"Enter new name for %s (leave blank to keep original name): ",
		original,
	)

	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read name: %w", err)
	}
	return strings.TrimSpace(line), nil
}
