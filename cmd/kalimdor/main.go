// Package main provides the kalimdor CLI: shape inference, validation and
// reshaping of tensor files from the command line.
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
