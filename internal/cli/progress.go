package cli

import (
	"fmt"
	"io"
)

// prints one progress line per completed file
type progressPrinter struct {
	out io.Writer
}

func (p *progressPrinter) Progress(fraction float64, processed, failed int) {
	fmt.Fprintf(p.out, "Progress: %.1f%% (processed %d, failed %d)\n",
		fraction*100, processed, failed)
}
