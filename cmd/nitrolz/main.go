// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

// nitrolz compresses and decompresses LZ10 and Yaz0 streams.
//
// Usage:
//
//	nitrolz compress --format yaz0 -o file.szs file.bin
//	nitrolz decompress -o file.bin file.szs
//	nitrolz info --compare file.szs
//
// A "-" input reads standard input; without -o the result goes to standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// command is one nitrolz subcommand.
type command struct {
	summary string
	run     func(env *environment, args []string) error
}

// environment carries the process streams so commands can be driven from tests.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var errUsage = errors.New("usage error")

func commands() map[string]command {
	return map[string]command{
		"compress":   {summary: "compress a file to LZ10 or Yaz0", run: runCompress},
		"decompress": {summary: "decompress an LZ10 or Yaz0 file (format is detected)", run: runDecompress},
		"info":       {summary: "show the header of a compressed file", run: runInfo},
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr}

	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	switch args[0] {
	case "--version", "version":
		fmt.Fprintf(stdout, "nitrolz %s\n", version)
		return nil
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	}

	cmd, ok := commands()[args[0]]
	if !ok {
		printUsage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	err := cmd.run(env, args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}

// newFlagSet returns a subcommand flag set with the shared --verbose flag.
func newFlagSet(env *environment, name string, verbose *bool) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("nitrolz "+name, pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	flagSet.BoolVarP(verbose, "verbose", "v", false, "enable debug logging")
	return flagSet
}

// parseInput parses flags and returns the single positional input path.
func parseInput(flagSet *pflag.FlagSet, args []string) (string, error) {
	if err := flagSet.Parse(args); err != nil {
		return "", err
	}

	rest := flagSet.Args()
	if len(rest) != 1 {
		return "", fmt.Errorf("%w: %s expects exactly one input, got %d", errUsage, flagSet.Name(), len(rest))
	}
	return rest[0], nil
}

// newLogger returns a text logger when w is a terminal and a JSON logger otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		options.Level = slog.LevelDebug
	}

	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `nitrolz: LZ10 and Yaz0 compression tool.

Usage:
  nitrolz <command> [flags] <input>

Commands:
`)
	for _, name := range []string{"compress", "decompress", "info"} {
		fmt.Fprintf(w, "  %-11s %s\n", name, commands()[name].summary)
	}
	fmt.Fprintf(w, `
Use "nitrolz <command> --help" for command flags, "nitrolz --version" for the version.
`)
}
