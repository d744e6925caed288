// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package main

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/woozymasta/nitrolz"
)

// baselineResult is the compressed size of one codec for the same plaintext.
type baselineResult struct {
	Name  string `yaml:"name"`
	Size  int    `yaml:"size"`
	Ratio string `yaml:"ratio"`
}

// compareBaselines re-encodes plain with both nitrolz formats and with
// block-mode lz4 and zstd at the default level.
func compareBaselines(plain []byte) ([]baselineResult, error) {
	var results []baselineResult

	for _, format := range []nitrolz.Format{nitrolz.FormatLZ10, nitrolz.FormatYaz0} {
		out, err := nitrolz.Compress(plain, format, nil)
		if err != nil {
			// LZ10 sizes stop at 24 bits.
			continue
		}
		results = append(results, baselineResult{Name: format.String(), Size: len(out)})
	}

	lz4Size, err := lz4BlockSize(plain)
	if err != nil {
		return nil, err
	}
	results = append(results, baselineResult{Name: "lz4", Size: lz4Size})

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer func() { _ = encoder.Close() }()
	results = append(results, baselineResult{Name: "zstd", Size: len(encoder.EncodeAll(plain, nil))})

	return results, nil
}

func lz4BlockSize(plain []byte) (int, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(plain)))
	written, err := lz4.CompressBlock(plain, destination, nil)
	if err != nil {
		return 0, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock reports 0 for incompressible input, which would be stored raw.
	if written == 0 {
		return len(plain), nil
	}
	return written, nil
}
