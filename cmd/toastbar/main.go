// Package main provides the entry point for the toastbar demo.
//
// toastbar is a small terminal mailbox. Archiving, deleting or marking a
// message read pops a toast bar whose action undoes the change until the
// toast times out.
//
// Usage:
//
//	toastbar [--rtl] [--no-mouse] [--config path] [--debug]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/riordanpawley/toastbar/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Stdout, os.Stderr, os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
