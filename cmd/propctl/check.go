package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bindprop/internal/checker"
	"bindprop/internal/logging"
	"bindprop/internal/observ"
	"bindprop/internal/testkit"
	"bindprop/internal/ui"
)

var (
	checkJobs    int
	checkSuites  []string
	checkUI      string
	checkList    bool
	checkVerbose bool
	checkDump    string
)

func init() {
	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", 0, "suites to run in parallel (default [check].jobs, then GOMAXPROCS)")
	checkCmd.Flags().StringSliceVar(&checkSuites, "suite", nil, "suite name pattern to run (repeatable, default [check].suites)")
	checkCmd.Flags().StringVar(&checkUI, "ui", "off", "live progress view (auto|on|off)")
	checkCmd.Flags().BoolVar(&checkList, "list", false, "list suite names and exit")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "print the assertion reports captured during the run")
	checkCmd.Flags().StringVar(&checkDump, "dump", "", "write captured reports to this file as msgpack")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the accessor invariant suites",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	patterns := app.cfg.Check.Suites
	if cmd.Flags().Changed("suite") {
		patterns = checkSuites
	}
	suites, err := testkit.Select(testkit.Suites(), patterns)
	if err != nil {
		return err
	}
	if checkList {
		for _, s := range suites {
			fmt.Fprintln(out, s.Name)
		}
		return nil
	}
	if len(suites) == 0 {
		return fmt.Errorf("no suite matches %s", strings.Join(patterns, ", "))
	}

	jobs := app.cfg.Check.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = checkJobs
	}
	useUI, err := resolveUIMode(checkUI)
	if err != nil {
		return err
	}

	// Suites provoke assertion failures on purpose; keep their reports out of
	// the configured sink and in a ring we can show on request.
	capture := logging.NewRingSink(max(app.cfg.Log.RingSize, len(suites)*4), logging.LevelTrace)
	prev := logging.SetDefault(capture)
	timer := observ.NewTimer()
	opts := checker.Options{Jobs: jobs, Timer: timer}

	var results []checker.Result
	if useUI {
		results, err = runCheckWithUI(cmd.Context(), suites, opts)
	} else {
		results, err = checker.Run(cmd.Context(), suites, opts)
	}
	logging.SetDefault(prev)
	if err != nil {
		return err
	}

	if checkVerbose {
		enc := logging.Encoder{Format: logging.FormatText, Detailed: true, Color: app.color}
		if err := capture.Dump(cmd.ErrOrStderr(), enc); err != nil {
			return err
		}
	}
	if checkDump != "" {
		if err := dumpReports(checkDump, capture); err != nil {
			return err
		}
	}

	if !app.quiet || hasFailures(results) {
		if err := ui.RenderReport(out, results, terminalWidth(), app.color); err != nil {
			return err
		}
	}
	if app.timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		if checkVerbose {
			for _, p := range timer.Report().Slowest(3) {
				fmt.Fprintf(cmd.ErrOrStderr(), "slow: %s %.3f ms\n", p.Name, p.DurationMS)
			}
		}
	}

	if _, failed := checker.Count(results); failed > 0 {
		return fmt.Errorf("%d of %d suites failed", failed, len(results))
	}
	return nil
}

type checkOutcome struct {
	results []checker.Result
	err     error
}

func runCheckWithUI(ctx context.Context, suites []testkit.Suite, opts checker.Options) ([]checker.Result, error) {
	events := make(chan checker.Event, 4*len(suites))
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		o := opts
		o.Progress = events
		res, err := checker.Run(ctx, suites, o)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	model := ui.NewProgressModel("checking accessor invariants", names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

func resolveUIMode(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "off":
		return false, nil
	case "on":
		return true, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func dumpReports(path string, ring *logging.RingSink) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return ring.Dump(f, logging.Encoder{Format: logging.FormatMsgpack})
}

func hasFailures(results []checker.Result) bool {
	_, failed := checker.Count(results)
	return failed > 0
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
