package manifest

import (
	"fmt"
	"io"
	"sort"

	json "github.com/goccy/go-json"
)

// Entry records the checksum of one file.
type Entry struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

// Manifest maps file paths to their recorded checksums.
type Manifest map[string]Entry

// Mismatch describes one verification failure.
type Mismatch struct {
	Path string
	Want string
	Got  string
}

// Write encodes the manifest to w as indented JSON.
func Write(w io.Writer, ma Manifest) error {
	const errCtx = "writing manifest"

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(ma); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Read decodes a manifest from r.
func Read(r io.Reader) (Manifest, error) {
	const errCtx = "reading manifest"

	var ma Manifest

	decoder := json.NewDecoder(r)

	if err := decoder.Decode(&ma); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return ma, nil
}

// Verify recomputes every entry with recompute and returns
// the mismatches, sorted by path. An empty result means
// all digests still match.
func Verify(
	ma Manifest,
	recompute func(path string, algorithm string) (string, error),
) ([]Mismatch, error) {
	const errCtx = "verifying manifest"

	paths := make([]string, 0, len(ma))
	for pa := range ma {
		paths = append(paths, pa)
	}

	sort.Strings(paths)

	var mismatches []Mismatch

	for _, pa := range paths {
		en := ma[pa]

		got, err := recompute(pa, en.Algorithm)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, pa, err,
			)
		}

		if got != en.Digest {
			mismatches = append(mismatches, Mismatch{
				Path: pa,
				Want: en.Digest,
				Got:  got,
			})
		}
	}

	return mismatches, nil
}
