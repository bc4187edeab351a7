package scan

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"weathering-atlas/internal/catalog"
	"weathering-atlas/internal/galaxy"
	"weathering-atlas/internal/planet"
)

// Entity totals below were fixed once from a reference run of the
// original generator over the full universe.

func TestFullScanTotals(t *testing.T) {
	cat, err := New(Config{Workers: 4}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	g, s, p := cat.Counts()
	if g != 196 {
		t.Fatalf("galaxy total %d, want 196", g)
	}
	if s != 9801 {
		t.Fatalf("system total %d, want 9801", s)
	}
	if p != 81223 {
		t.Fatalf("planet total %d, want 81223", p)
	}

	// Sorted output ordering; the reference output file starts with 0,7.
	if cat.Galaxies[0] != (galaxy.Galaxy{GX: 0, GY: 7}) {
		t.Fatalf("first sorted galaxy %+v, want (0,7)", cat.Galaxies[0])
	}
	for i := 1; i < len(cat.Galaxies); i++ {
		a, b := cat.Galaxies[i-1], cat.Galaxies[i]
		if a.GX > b.GX || (a.GX == b.GX && a.GY >= b.GY) {
			t.Fatalf("galaxies out of order at %d: %+v before %+v", i, a, b)
		}
	}
}

func TestPartitionInvariance(t *testing.T) {
	single, err := New(Config{Workers: 1}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("single-worker scan failed: %v", err)
	}
	parallel, err := New(Config{Workers: 8}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("parallel scan failed: %v", err)
	}

	if !reflect.DeepEqual(single.Galaxies, parallel.Galaxies) {
		t.Fatalf("galaxy sets differ between worker counts")
	}
	if !reflect.DeepEqual(single.Systems, parallel.Systems) {
		t.Fatalf("system sets differ between worker counts")
	}

	// Planet ordering is unspecified; compare the sets.
	if !planetSetsEqual(single.Planets, parallel.Planets) {
		t.Fatalf("planet sets differ between worker counts")
	}
}

func TestBoundaryRowsScanned(t *testing.T) {
	cat, err := New(Config{Workers: 2}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	// The reference universe has galaxies on row 0 (e.g. (52,0)); the
	// scan must include both edge rows of the half-open [0,100) range.
	foundRow0 := false
	for _, g := range cat.Galaxies {
		if g.GY == 0 {
			foundRow0 = true
		}
		if g.GY < 0 || g.GY >= galaxy.UniverseSize || g.GX < 0 || g.GX >= galaxy.UniverseSize {
			t.Fatalf("galaxy %+v outside universe bounds", g)
		}
	}
	if !foundRow0 {
		t.Fatalf("no galaxy found on boundary row gy=0; reference has (52,0)")
	}
}

func TestWorkerCountClamped(t *testing.T) {
	cat, err := New(Config{Workers: 0}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("scan with clamped worker count failed: %v", err)
	}
	if g, _, _ := cat.Counts(); g != 196 {
		t.Fatalf("clamped scan galaxy total %d, want 196", g)
	}
}

func TestCancelledScanStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cat, err := New(Config{Workers: 2}, nil).Run(ctx)
	if err == nil {
		t.Fatalf("cancelled scan must surface ctx error")
	}
	if g, _, _ := cat.Counts(); g != 0 {
		t.Fatalf("pre-cancelled scan produced %d galaxies", g)
	}
}

func TestProgressReports(t *testing.T) {
	type report struct{ done, total int }
	var mu sync.Mutex
	var reports []report
	progress := func(rowsDone, totalRows, galaxies, systems, planets int) {
		mu.Lock()
		reports = append(reports, report{rowsDone, totalRows})
		mu.Unlock()
	}

	if _, err := New(Config{Workers: 4}, progress).Run(context.Background()); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if len(reports) == 0 {
		t.Fatalf("no progress reports emitted")
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].done < reports[j].done })
	last := reports[len(reports)-1]
	if last.done != galaxy.UniverseSize || last.total != galaxy.UniverseSize {
		t.Fatalf("final report %+v, want (100,100)", last)
	}
	for _, r := range reports[:len(reports)-1] {
		if r.done%progressEvery != 0 {
			t.Fatalf("report at row %d not on the reporting interval", r.done)
		}
	}
}

func TestProtocolReporterFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewProtocolReporter(&buf)
	r.Progress(5, 100, 9, 450, 3700)
	r.Done(196, 9801, 81223, 1234*time.Millisecond)

	want := "PROGRESS\t5\t100\t9\t450\t3700\n" +
		"DONE\t196\t9801\t81223\t1234\n"
	if buf.String() != want {
		t.Fatalf("protocol output %q, want %q", buf.String(), want)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if strings.Contains(line, " ") {
			t.Fatalf("protocol line %q must be tab-separated only", line)
		}
	}
}

func TestScanMatchesCatalogRoundTrip(t *testing.T) {
	cat, err := New(Config{Workers: 4}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	var first bytes.Buffer
	if err := catalog.Write(&first, cat); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	parsed, err := catalog.Parse(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var second bytes.Buffer
	if err := catalog.Write(&second, parsed); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatalf("full catalog re-serialization not byte-identical")
	}
}

func planetSetsEqual(a, b []planet.Planet) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]int, len(a))
	for _, p := range a {
		set[planetKey(p)]++
	}
	for _, p := range b {
		set[planetKey(p)]--
		if set[planetKey(p)] < 0 {
			return false
		}
	}
	return true
}

func planetKey(p planet.Planet) string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d", p.GX, p.GY, p.SX, p.SY, p.PX, p.PY)
}
