package cli

import (
	"bytes"
	"testing"
)

func TestProgressPrinter(t *testing.T) {
	var out bytes.Buffer
	p := &progressPrinter{out: &out}

	p.Progress(0.5, 1, 0)
	p.Progress(1.0, 1, 1)

	want := "Progress: 50.0% (processed 1, failed 0)\n" +
		"Progress: 100.0% (processed 1, failed 1)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
