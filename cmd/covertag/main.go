package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/csmith/envflag/v2"
	"github.com/csmith/slogflags"
	"github.com/spf13/afero"

	"github.com/handiism/covertag/internal/config"
	"github.com/handiism/covertag/internal/pipeline"
)

func main() {
	config.DefineFlags(flag.CommandLine)
	flag.Usage = usage
	envflag.Parse()
	_ = slogflags.Logger(slogflags.WithSetDefault(true))

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no folder given")
		flag.Usage()
		os.Exit(1)
	}
	folder := flag.Arg(0)

	fs := afero.NewOsFs()

	settings, err := config.FromFlags(fs, flag.CommandLine)
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	manager, err := pipeline.NewFromSettings(ctx, settings, fs)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	summary, err := manager.Run(ctx, folder)
	if err != nil {
		if ctx.Err() != nil {
			slog.Warn("Interrupted", "summary", summary)
			os.Exit(130)
		}
		slog.Error("Failed to process folder", "folder", folder, "error", err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "covertag - tag \"Artist - Title.mp3\" files with metadata and cover art")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  covertag [options] <folder>")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "For interactive mode, use: covertag-tui")
	fmt.Fprintln(out)
	flag.PrintDefaults()
}
