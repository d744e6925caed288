// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/nitrolz"
)

// infoReport describes one compressed file.
type infoReport struct {
	Format    string           `yaml:"format"`
	Declared  int              `yaml:"declared"`
	Stored    int              `yaml:"stored"`
	Ratio     string           `yaml:"ratio"`
	BLAKE3    string           `yaml:"blake3,omitempty"`
	Baselines []baselineResult `yaml:"baselines,omitempty"`
}

// inspect reads the header of src and, when asked, decodes it to hash the
// plaintext or to compare it against other codecs.
func inspect(src []byte, compare, checksum bool) (*infoReport, error) {
	format, declared, err := nitrolz.DeclaredSize(src)
	if err != nil {
		return nil, err
	}

	report := &infoReport{
		Format:   format.String(),
		Declared: declared,
		Stored:   len(src),
		Ratio:    formatRatio(len(src), declared),
	}
	if !compare && !checksum {
		return report, nil
	}

	plain, _, err := nitrolz.DecompressAuto(src, nil)
	if err != nil {
		return nil, err
	}

	if checksum {
		sum := blake3.Sum256(plain)
		report.BLAKE3 = hex.EncodeToString(sum[:])
	}
	if compare {
		report.Baselines, err = compareBaselines(plain)
		if err != nil {
			return nil, err
		}
		for i := range report.Baselines {
			report.Baselines[i].Ratio = formatRatio(report.Baselines[i].Size, len(plain))
		}
	}

	return report, nil
}

func (r *infoReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "format:   %s\n", r.Format)
	fmt.Fprintf(w, "declared: %s (%d bytes)\n", humanize.IBytes(uint64(r.Declared)), r.Declared)
	fmt.Fprintf(w, "stored:   %s (%d bytes)\n", humanize.IBytes(uint64(r.Stored)), r.Stored)
	fmt.Fprintf(w, "ratio:    %s\n", r.Ratio)
	if r.BLAKE3 != "" {
		fmt.Fprintf(w, "blake3:   %s\n", r.BLAKE3)
	}
	for _, b := range r.Baselines {
		fmt.Fprintf(w, "%-9s %s (%s)\n", b.Name+":", humanize.IBytes(uint64(b.Size)), b.Ratio)
	}
}

func (r *infoReport) writeYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return err
	}
	return encoder.Close()
}

func formatRatio(stored, plain int) string {
	if plain == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(stored)/float64(plain))
}
