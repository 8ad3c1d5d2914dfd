package main

import (
	"fmt"
	"os"

	"github.com/gyeh/mbsfacts/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}
}
