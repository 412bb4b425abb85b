package checksum

import (
	"errors"
	"fmt"
	"os"

	"github.com/byte4ever/hashing/engine"
)

// SidecarPath returns the sidecar digest path for a file,
// e.g. notes.txt.sha256.
func SidecarPath(path string, al engine.Algorithm) string {
	return path + "." + al.String()
}

// SaveDigest computes the digest of the file at path and
// writes it to the sidecar file.
func SaveDigest(path string, al engine.Algorithm) error {
	const errCtx = "saving digest"

	digest, err := fileDigest(path, al)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := os.WriteFile(
		SidecarPath(path, al), []byte(digest), 0o600,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// StoredDigest reads a digest from the sidecar file.
// Returns empty string with no error if the sidecar does
// not exist.
func StoredDigest(
	path string,
	al engine.Algorithm,
) (string, error) {
	const errCtx = "reading stored digest"

	sp := SidecarPath(path, al)

	digest, err := os.ReadFile(sp) //nolint:gosec // path is caller-provided by design
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(digest), nil
}

// VerifyDigest compares the recomputed digest of the file
// against its stored sidecar digest.
func VerifyDigest(
	path string,
	al engine.Algorithm,
) (bool, error) {
	const errCtx = "verifying digest"

	calc, err := fileDigest(path, al)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	stored, err := StoredDigest(path, al)
	if err != nil {
		return false, fmt.Errorf("%s: %w", errCtx, err)
	}

	return calc == stored, nil
}
