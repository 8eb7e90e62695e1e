package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. Deferred calls, logger.Sync included,
// finish before main exits.
func run() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()
	defer Recover(logger)

	if err := NewRootCommand(cfg, logger).Execute(); err != nil {
		return 1
	}
	return 0
}
