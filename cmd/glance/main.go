// Package main provides the glance CLI: a read-only SQL gatekeeper for
// SQLite database files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/glance/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes caller mistakes from configuration and system
// failures. Every error terminates the single invocation, never more.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrNoDatabasePath),
		errors.Is(err, types.ErrDatabaseNotFound),
		errors.Is(err, types.ErrDatabaseNotFile),
		errors.Is(err, types.ErrDatabaseNotReadable):
		return exitSysError
	default:
		return exitUserError
	}
}
