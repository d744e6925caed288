// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/woozymasta/nitrolz"
)

var errTerminalOutput = errors.New("refusing to write compressed data to a terminal (use -o or --force)")

func runCompress(env *environment, args []string) error {
	var (
		verbose     bool
		formatName  string
		noLookahead bool
		outPath     string
		force       bool
	)

	flagSet := newFlagSet(env, "compress", &verbose)
	flagSet.StringVarP(&formatName, "format", "f", nitrolz.FormatYaz0.String(), "output format: lz10 or yaz0")
	flagSet.BoolVar(&noLookahead, "no-lookahead", false, "disable lazy matching (faster, slightly larger output)")
	flagSet.StringVarP(&outPath, "output", "o", "", "output file (default: standard output)")
	flagSet.BoolVar(&force, "force", false, "write compressed data even when standard output is a terminal")

	inPath, err := parseInput(flagSet, args)
	if err != nil {
		return err
	}
	logger := newLogger(env.stderr, verbose)

	format, err := nitrolz.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if !force && (outPath == "" || outPath == "-") && isTerminal(env.stdout) {
		return errTerminalOutput
	}

	src, err := readInput(env, inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := nitrolz.Compress(src, format, &nitrolz.CompressOptions{Lookahead: !noLookahead})
	if err != nil {
		return fmt.Errorf("compress %s: %w", inPath, err)
	}

	logger.Debug("compressed",
		"input", inPath,
		"format", format.String(),
		"lookahead", !noLookahead,
		"in", humanize.IBytes(uint64(len(src))),
		"out", humanize.IBytes(uint64(len(out))),
		"elapsed", time.Since(start),
	)

	return writeOutput(env, logger, outPath, out)
}

func runDecompress(env *environment, args []string) error {
	var (
		verbose  bool
		maxSize  int
		maxInput int
		outPath  string
	)

	flagSet := newFlagSet(env, "decompress", &verbose)
	flagSet.IntVar(&maxSize, "max-size", 0, "reject streams declaring more output bytes than this (0 = no limit)")
	flagSet.IntVar(&maxInput, "max-input", 0, "reject inputs larger than this many bytes (0 = no limit)")
	flagSet.StringVarP(&outPath, "output", "o", "", "output file (default: standard output)")

	inPath, err := parseInput(flagSet, args)
	if err != nil {
		return err
	}
	logger := newLogger(env.stderr, verbose)

	reader, closeInput, err := openInput(env, inPath)
	if err != nil {
		return err
	}
	defer closeInput()

	start := time.Now()
	out, format, err := nitrolz.DecompressFromReader(reader, &nitrolz.DecompressOptions{
		MaxOutLen:    maxSize,
		MaxInputSize: maxInput,
	})
	if err != nil {
		return fmt.Errorf("decompress %s: %w", inPath, err)
	}

	logger.Debug("decompressed",
		"input", inPath,
		"format", format.String(),
		"out", humanize.IBytes(uint64(len(out))),
		"elapsed", time.Since(start),
	)

	return writeOutput(env, logger, outPath, out)
}

func runInfo(env *environment, args []string) error {
	var (
		verbose  bool
		compare  bool
		checksum bool
		asYAML   bool
	)

	flagSet := newFlagSet(env, "info", &verbose)
	flagSet.BoolVar(&compare, "compare", false, "also report lz10, yaz0, lz4 and zstd sizes for the decoded data")
	flagSet.BoolVar(&checksum, "checksum", false, "also report the BLAKE3-256 digest of the decoded data")
	flagSet.BoolVar(&asYAML, "yaml", false, "print the report as YAML")

	inPath, err := parseInput(flagSet, args)
	if err != nil {
		return err
	}
	logger := newLogger(env.stderr, verbose)

	src, err := readInput(env, inPath)
	if err != nil {
		return err
	}

	report, err := inspect(src, compare, checksum)
	if err != nil {
		return fmt.Errorf("info %s: %w", inPath, err)
	}
	logger.Debug("inspected", "input", inPath, "format", report.Format, "baselines", len(report.Baselines))

	if asYAML {
		return report.writeYAML(env.stdout)
	}
	report.writeText(env.stdout)
	return nil
}

// openInput returns a reader for path, or standard input for "-".
func openInput(env *environment, path string) (io.Reader, func(), error) {
	if path == "-" {
		return env.stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return file, func() { _ = file.Close() }, nil
}

func readInput(env *environment, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(env.stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(env *environment, logger *slog.Logger, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := env.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	logger.Info("wrote", "path", path, "size", humanize.IBytes(uint64(len(data))))
	return nil
}
