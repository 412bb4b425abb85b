// Package manifest reads and writes JSON digest manifests
// mapping file paths to recorded checksums, and verifies
// recorded digests against recomputed ones.
package manifest
