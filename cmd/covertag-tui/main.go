package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/csmith/envflag/v2"
	"github.com/spf13/afero"

	"github.com/handiism/covertag/internal/config"
	"github.com/handiism/covertag/internal/tui"
)

func main() {
	config.DefineFlags(flag.CommandLine)
	envflag.Parse()

	fs := afero.NewOsFs()

	settings, err := config.FromFlags(fs, flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(settings, fs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
