// Package main implements the ista command line tool: inspect, convert,
// filter, store, and export OWL2 ontologies.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
)

const (
	// Version is the build version reported by --version.
	Version = "0.1.0"
	appName = "ista"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	return newRootCmd().Execute()
}
