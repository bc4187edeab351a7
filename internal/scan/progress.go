package scan

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ProtocolReporter writes the tab-separated progress protocol consumed
// by the wrapping UI:
//
//	PROGRESS\t<rows_done>\t<total_rows>\t<galaxies>\t<systems>\t<planets>
//	DONE\t<galaxies>\t<systems>\t<planets>\t<elapsed_ms>
//
// A reporter-level mutex keeps concurrent workers from interleaving
// lines. Nothing else may write to the same stream during a scan.
type ProtocolReporter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewProtocolReporter(w io.Writer) *ProtocolReporter {
	return &ProtocolReporter{w: w}
}

// Progress emits one PROGRESS line.
func (r *ProtocolReporter) Progress(rowsDone, totalRows, galaxies, systems, planets int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "PROGRESS\t%d\t%d\t%d\t%d\t%d\n", rowsDone, totalRows, galaxies, systems, planets)
}

// Done emits the terminal DONE line with global totals.
func (r *ProtocolReporter) Done(galaxies, systems, planets int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "DONE\t%d\t%d\t%d\t%d\n", galaxies, systems, planets, elapsed.Milliseconds())
}
