// Package main provides the hashing CLI that computes
// SHA-256 or MD5 checksums of files, directories, or a
// stdin message, writes digest manifests, and verifies
// them.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/byte4ever/hashing/checksum"
	"github.com/byte4ever/hashing/config"
	"github.com/byte4ever/hashing/engine"
	"github.com/byte4ever/hashing/format"
	"github.com/byte4ever/hashing/manifest"
)

func run() error {
	const errCtx = "hashing"

	var (
		algorithmName string
		depth         int
		concat        bool
		rowFormat     string
		jsonOut       bool
		manifestFile  string
		verifyFile    string
		configFile    string
	)

	flag.StringVar(
		&algorithmName, "algorithm", "",
		"hash algorithm, sha256 or md5",
	)

	flag.IntVar(
		&depth, "depth", 0,
		"directory search depth limit, -1 for unlimited",
	)

	flag.BoolVar(
		&concat, "concat", false,
		"hash all files as one concatenated message",
	)

	flag.StringVar(
		&rowFormat, "format", "",
		`output row template, e.g. "{digest}  {path}"`,
	)

	flag.BoolVar(
		&jsonOut, "json", false,
		"emit result rows as JSON",
	)

	flag.StringVar(
		&manifestFile, "manifest", "",
		"write a digest manifest to this file",
	)

	flag.StringVar(
		&verifyFile, "verify", "",
		"verify digests recorded in this manifest",
	)

	flag.StringVar(
		&configFile, "config", "",
		"YAML config file with run defaults",
	)

	flag.Parse()

	cfg := config.Default()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		cfg = loaded
	}

	// Flags left at their zero value fall back to the
	// config defaults.
	if algorithmName == "" {
		algorithmName = cfg.Algorithm
	}

	if depth == 0 {
		depth = cfg.Depth
	}

	if rowFormat == "" {
		rowFormat = cfg.Format
	}

	concat = concat || cfg.Concat

	if verifyFile != "" {
		if err := verify(verifyFile); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	al, err := engine.ParseAlgorithm(algorithmName)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	rows, err := checksum.Run(checksum.Options{
		Algorithm: al,
		Paths:     flag.Args(),
		Depth:     depth,
		Concat:    concat,
		Template:  rowFormat,
		JSON:      jsonOut,
		Stdin:     os.Stdin,
		Out:       os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if manifestFile != "" {
		if err := writeManifest(
			manifestFile, rows,
		); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}

// writeManifest records the file-backed rows in a JSON
// manifest. Stdin and concatenated rows have no stable
// path and are skipped.
func writeManifest(
	path string,
	rows []format.Row,
) error {
	const errCtx = "writing manifest"

	ma := make(manifest.Manifest, len(rows))

	for _, row := range rows {
		if row.Path == "" ||
			row.Path == checksum.StdinPath {
			continue
		}

		ma[row.Path] = manifest.Entry{
			Algorithm: row.Algorithm,
			Digest:    row.Digest,
		}
	}

	fo, err := os.Create(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer fo.Close() //nolint:errcheck // best-effort close

	if err := manifest.Write(fo, ma); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// verify recomputes every digest recorded in the manifest
// file and reports mismatches.
func verify(path string) error {
	const errCtx = "verifying manifest"

	fi, err := os.Open(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer fi.Close() //nolint:errcheck // best-effort close

	ma, err := manifest.Read(fi)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	mismatches, err := manifest.Verify(
		ma, checksum.Recompute(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	for _, mi := range mismatches {
		fmt.Printf(
			"%s: recorded %s, got %s\n",
			mi.Path, mi.Want, mi.Got,
		)
	}

	if len(mismatches) > 0 {
		return fmt.Errorf(
			"%s: %d mismatched files",
			errCtx, len(mismatches),
		)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
