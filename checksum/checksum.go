package checksum

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/byte4ever/hashing/engine"
	"github.com/byte4ever/hashing/fileset"
	"github.com/byte4ever/hashing/format"
)

var (
	// ErrNothingHashed reports a run in which no path
	// resolved to hashable input.
	ErrNothingHashed = errors.New("nothing hashed")

	// ErrNoInput reports a run that needs stdin but has no
	// reader wired.
	ErrNoInput = errors.New("no input reader")
)

// StdinPath is the conventional stdin placeholder path.
const StdinPath = "-"

// stdinLimit bounds the stdin message capture.
const stdinLimit = 1 << 20

// Options configures a checksum run.
type Options struct {
	// Algorithm selects the checksum variant.
	Algorithm engine.Algorithm

	// Paths are files or directories to hash. Empty means
	// stdin; the path "-" also reads stdin.
	Paths []string

	// Depth limits the directory search
	// (fileset.UnlimitedDepth for no limit).
	Depth int

	// Concat hashes all resolved files as one concatenated
	// message.
	Concat bool

	// Template overrides the output row rendering. Empty
	// picks the default per row kind.
	Template string

	// JSON emits rows as a JSON array instead of rendered
	// lines.
	JSON bool

	Stdin io.Reader
	Out   io.Writer
}

// Collect resolves the configured inputs and returns one
// result row per hashed message. Missing paths are logged
// and skipped; the run fails only when nothing at all was
// hashed.
func Collect(opts Options) ([]format.Row, error) {
	const errCtx = "collecting checksums"

	if len(opts.Paths) == 0 {
		row, err := stdinRow(opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return []format.Row{row}, nil
	}

	if opts.Concat {
		row, err := concatRow(opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return []format.Row{row}, nil
	}

	var rows []format.Row

	for _, pa := range opts.Paths {
		if pa == StdinPath {
			row, err := stdinRow(opts)
			if err != nil {
				return nil, fmt.Errorf(
					"%s: %w", errCtx, err,
				)
			}

			rows = append(rows, row)

			continue
		}

		files, err := fileset.Resolve(pa, opts.Depth)
		if err != nil {
			if errors.Is(err, fileset.ErrNotFound) {
				slog.Warn(
					"no file or directory",
					"path", pa,
				)

				continue
			}

			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		for _, fi := range files {
			digest, err := fileDigest(fi, opts.Algorithm)
			if err != nil {
				return nil, fmt.Errorf(
					"%s: %w", errCtx, err,
				)
			}

			rows = append(rows, format.Row{
				Path:      fi,
				Algorithm: opts.Algorithm.String(),
				Digest:    digest,
			})
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf(
			"%s: %w", errCtx, ErrNothingHashed,
		)
	}

	return rows, nil
}

// Run collects rows and writes them to opts.Out, either as
// template-rendered lines or as a JSON array. It returns
// the rows for further use, such as manifest writing.
func Run(opts Options) ([]format.Row, error) {
	const errCtx = "running checksum"

	rows, err := Collect(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if opts.JSON {
		if err := format.EncodeJSON(
			opts.Out, rows,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		return rows, nil
	}

	for _, row := range rows {
		line := format.Render(rowTemplate(opts, row), row)

		if _, err := fmt.Fprintln(opts.Out, line); err != nil {
			return nil, fmt.Errorf(
				"%s: writing row: %w", errCtx, err,
			)
		}
	}

	return rows, nil
}

// rowTemplate picks the effective template: the configured
// one, digest-only for a concatenated row without a path,
// or the default.
func rowTemplate(opts Options, row format.Row) string {
	if opts.Template != "" {
		return opts.Template
	}

	if row.Path == "" {
		return "{digest}"
	}

	return format.DefaultTemplate
}

// concatRow hashes all files under all paths as a single
// concatenated message.
func concatRow(opts Options) (format.Row, error) {
	var files []string

	for _, pa := range opts.Paths {
		resolved, err := fileset.Resolve(pa, opts.Depth)
		if err != nil {
			if errors.Is(err, fileset.ErrNotFound) {
				slog.Warn(
					"no file or directory",
					"path", pa,
				)

				continue
			}

			return format.Row{}, err
		}

		files = append(files, resolved...)
	}

	if len(files) == 0 {
		return format.Row{}, ErrNothingHashed
	}

	message, err := fileset.ReadAll(files)
	if err != nil {
		return format.Row{}, err
	}

	digest, err := engine.Sum(opts.Algorithm, message)
	if err != nil {
		return format.Row{}, err
	}

	return format.Row{
		Algorithm: opts.Algorithm.String(),
		Digest:    digest,
	}, nil
}

// stdinRow captures a bounded stdin message and hashes it.
func stdinRow(opts Options) (format.Row, error) {
	if opts.Stdin == nil {
		return format.Row{}, ErrNoInput
	}

	buf := make([]byte, stdinLimit)

	size, err := io.ReadFull(opts.Stdin, buf)
	if err != nil &&
		!errors.Is(err, io.EOF) &&
		!errors.Is(err, io.ErrUnexpectedEOF) {
		return format.Row{}, fmt.Errorf(
			"reading stdin: %w", err,
		)
	}

	digest, err := engine.SumLength(
		opts.Algorithm, buf, size,
	)
	if err != nil {
		return format.Row{}, err
	}

	return format.Row{
		Path:      StdinPath,
		Algorithm: opts.Algorithm.String(),
		Digest:    digest,
	}, nil
}

// fileDigest reads one file and hashes its contents.
func fileDigest(
	path string,
	al engine.Algorithm,
) (string, error) {
	message, err := fileset.ReadAll([]string{path})
	if err != nil {
		return "", err
	}

	return engine.Sum(al, message)
}

// Recompute returns a manifest recompute function bound to
// the engine and the local filesystem.
func Recompute() func(
	path string,
	algorithm string,
) (string, error) {
	return func(
		path string,
		algorithm string,
	) (string, error) {
		al, err := engine.ParseAlgorithm(algorithm)
		if err != nil {
			return "", err
		}

		return fileDigest(path, al)
	}
}
