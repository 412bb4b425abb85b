// Package checksum orchestrates checksum runs: it resolves
// paths to files, hashes them per file or as one
// concatenated message, captures stdin input, renders
// result rows, and maintains sidecar digest files.
package checksum
