package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
