package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bindprop/internal/config"
	"bindprop/internal/logging"
)

// setupLogging builds the sink described by lc, makes it the process
// default and attaches it to the command context. The returned cleanup
// flushes and closes the sink and restores the previous default.
func setupLogging(cmd *cobra.Command, lc config.LogConfig) (func(), error) {
	cfg, err := lc.Logging(isTerminal(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("invalid log configuration: %w", err)
	}

	// Level off and no output: skip the sink entirely.
	if cfg.Level == logging.LevelOff && lc.Output == "" {
		prev := logging.SetDefault(logging.Nop)
		cmd.SetContext(logging.WithSink(cmd.Context(), logging.Nop))
		return func() { logging.SetDefault(prev) }, nil
	}

	sink, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create log sink: %w", err)
	}
	prev := logging.SetDefault(sink)

	ctx := logging.WithSink(cmd.Context(), sink)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	cleanup := func() {
		logging.SetDefault(prev)
		if err := sink.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "log: flush error: %v\n", err)
		}
		if err := sink.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "log: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
