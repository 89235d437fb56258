// Package checker runs invariant suites in parallel and reports their
// progress as a stream of events.
package checker

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"bindprop/internal/logging"
	"bindprop/internal/observ"
	"bindprop/internal/testkit"
)

// Status is the state of one suite.
type Status uint8

const (
	StatusQueued Status = iota
	StatusRunning
	StatusPassed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	default:
		return "queued"
	}
}

// Event reports a suite changing status.
type Event struct {
	Suite  string
	Status Status
	Err    error
}

// Result is the outcome of one suite.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the suite succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// Options controls Run.
type Options struct {
	Jobs     int           // <= 0 means GOMAXPROCS
	Timer    *observ.Timer // optional per-suite timings
	Progress chan<- Event  // optional; Run never closes it
}

// Run executes every suite and returns one result per suite, in input
// order. A failing suite does not stop the others; only cancellation of
// ctx ends the run early.
func Run(ctx context.Context, suites []testkit.Suite, opts Options) ([]Result, error) {
	results := make([]Result, len(suites))
	for i, s := range suites {
		results[i].Name = s.Name
	}
	if len(suites) == 0 {
		return results, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for _, s := range suites {
		emit(opts.Progress, Event{Suite: s.Name, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(suites)))

	for i, s := range suites {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(opts.Progress, Event{Suite: s.Name, Status: StatusRunning})
			stop := func(string) {}
			if opts.Timer != nil {
				stop = opts.Timer.Track(s.Name)
			}
			start := time.Now()
			err := runSuite(s)
			results[i] = Result{Name: s.Name, Err: err, Duration: time.Since(start)}

			status, note := StatusPassed, ""
			if err != nil {
				status, note = StatusFailed, "failed"
				logging.Debugf("suite %s failed: %v", s.Name, err)
			} else {
				logging.Tracef("suite %s passed", s.Name)
			}
			stop(note)
			emit(opts.Progress, Event{Suite: s.Name, Status: status, Err: err})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// runSuite turns a panic that is not an assertion violation into a failure
// instead of taking the whole run down.
func runSuite(s testkit.Suite) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("suite panicked: %v", r)
		}
	}()
	return s.Run()
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}

// Count returns the number of passed and failed results.
func Count(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
