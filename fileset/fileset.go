package fileset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidDepth reports a search depth outside the
	// accepted range.
	ErrInvalidDepth = errors.New("invalid search depth")

	// ErrNotFound reports a path that resolves to no
	// regular file.
	ErrNotFound = errors.New("no file or directory")
)

// UnlimitedDepth disables the recursion limit.
const UnlimitedDepth = -1

// Resolve returns the regular files beneath path. A file
// path resolves to itself; a directory is searched
// recursively down to depth levels (UnlimitedDepth for no
// limit). Entries whose name starts with a dot are skipped
// during the search. A path yielding no files is an
// ErrNotFound.
func Resolve(path string, depth int) ([]string, error) {
	const errCtx = "resolving path"

	if depth == 0 || depth < UnlimitedDepth {
		return nil, fmt.Errorf(
			"%s: %w: %d", errCtx, ErrInvalidDepth, depth,
		)
	}

	pa := filepath.Clean(path)

	info, err := os.Stat(pa)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %s", errCtx, ErrNotFound, path,
		)
	}

	switch {
	case info.Mode().IsRegular():
		return []string{pa}, nil

	case info.IsDir():
		files, err := dirFiles(pa, depth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		if len(files) == 0 {
			return nil, fmt.Errorf(
				"%s: %w: %s", errCtx, ErrNotFound, path,
			)
		}

		return files, nil

	default:
		// Sockets, devices and the like are not hashable.
		return nil, fmt.Errorf(
			"%s: %w: %s", errCtx, ErrNotFound, path,
		)
	}
}

// dirFiles collects regular files under dir, recursing
// into subdirectories while depth allows.
func dirFiles(dir string, depth int) ([]string, error) {
	if depth == 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"listing directory %s: %w", dir, err,
		)
	}

	var files []string

	for _, en := range entries {
		if strings.HasPrefix(en.Name(), ".") {
			continue
		}

		full := filepath.Join(dir, en.Name())

		switch {
		case en.IsDir():
			next := depth
			if depth != UnlimitedDepth {
				next = depth - 1
			}

			nested, err := dirFiles(full, next)
			if err != nil {
				return nil, err
			}

			files = append(files, nested...)

		case en.Type().IsRegular():
			files = append(files, full)
		}
	}

	return files, nil
}

// ReadAll reads the files and concatenates their contents,
// in order, into one contiguous message buffer.
func ReadAll(files []string) ([]byte, error) {
	const errCtx = "reading files"

	var message []byte

	for _, fi := range files {
		content, err := os.ReadFile(fi) //nolint:gosec // paths resolved from CLI arguments
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %s: %w", errCtx, fi, err,
			)
		}

		message = append(message, content...)
	}

	return message, nil
}
