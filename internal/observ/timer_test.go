package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	if r := tm.Report(); len(r.Phases) != 0 || r.TotalMS != 0 || r.WallMS != 0 {
		t.Errorf("empty report = %+v", r)
	}
	a := tm.Begin("round-trip/stored")
	b := tm.Begin("alias/independence")
	open := tm.Begin("never-ended")
	tm.End(b, "failed")
	tm.End(a, "")
	tm.End(a, "ignored")
	tm.End(99, "ignored")
	_ = open

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want the 2 finished ones", len(r.Phases))
	}
	if r.Phases[0].Name != "round-trip/stored" || r.Phases[0].Note != "" || r.Phases[1].Note != "failed" {
		t.Errorf("phases = %+v", r.Phases)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %v below a single phase %v", r.TotalMS, r.Phases[0].DurationMS)
	}

	s := tm.Summary()
	for _, want := range []string{"timings:\n", "alias/independence", "// failed", "sum", "wall"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "never-ended") {
		t.Error("unfinished phases must not be reported")
	}
}

func TestTrackAndSlowest(t *testing.T) {
	tm := NewTimer()
	stop := tm.Track("slow")
	time.Sleep(2 * time.Millisecond)
	stop("")
	tm.Track("fast")("")

	slowest := tm.Report().Slowest(1)
	if len(slowest) != 1 || slowest[0].Name != "slow" {
		t.Errorf("Slowest(1) = %+v", slowest)
	}
	if got := len(tm.Report().Slowest(-1)); got != 2 {
		t.Errorf("Slowest(-1) = %d phases, want all 2", got)
	}
}

func TestTimerConcurrentOverlap(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop := tm.Track("p")
			time.Sleep(5 * time.Millisecond)
			stop("")
		}()
	}
	wg.Wait()
	r := tm.Report()
	if len(r.Phases) != 8 {
		t.Fatalf("phases = %d, want 8", len(r.Phases))
	}
	if r.TotalMS < r.WallMS {
		t.Errorf("sum %v below wall %v for overlapping phases", r.TotalMS, r.WallMS)
	}
}
