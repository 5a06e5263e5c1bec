package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/edna/cmd/edna"
	"github.com/arthur-debert/edna/internal/version"
)

func main() {
	rootCmd := edna.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "EDNA",
		Section: "1",
		Source:  "edna " + version.Version,
		Manual:  "edna manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
