package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedAlgorithm reports a selector that does
	// not match a known checksum variant.
	ErrUnsupportedAlgorithm = errors.New(
		"unsupported algorithm",
	)

	// ErrInvalidInput reports a message length that is
	// inconsistent with the supplied buffer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMessageTooLarge reports a message whose padded
	// block buffer cannot be allocated.
	ErrMessageTooLarge = errors.New("message too large")
)

// Algorithm selects one of the supported checksum variants.
type Algorithm int

const (
	// SHA256 is the FIPS 180-4 SHA-256 algorithm.
	SHA256 Algorithm = iota

	// MD5 is the RFC 1321 MD5 algorithm.
	MD5
)

// variant binds the capability set of one algorithm: its
// digest width, initial state vector, block word order,
// compression function, and digest encoding.
type variant struct {
	name string

	// hexLength is the digest length in hex characters.
	hexLength int

	// initVector is the fixed starting state. It is copied
	// into a fresh state vector per invocation.
	initVector []uint32

	// blockLittleEndian marks algorithms that read block
	// words in little-endian byte order.
	blockLittleEndian bool

	compress func(state []uint32, chunk []uint32)
	encode   func(state []uint32) string
}

func (al Algorithm) variant() (*variant, error) {
	switch al {
	case SHA256:
		return &sha256Variant, nil
	case MD5:
		return &md5Variant, nil
	default:
		return nil, fmt.Errorf(
			"%w: algorithm %d", ErrUnsupportedAlgorithm, al,
		)
	}
}

// ParseAlgorithm maps a selector name like "sha256" or
// "md5" to its Algorithm value. Matching ignores case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "sha256":
		return SHA256, nil
	case "md5":
		return MD5, nil
	default:
		return 0, fmt.Errorf(
			"%w: %q", ErrUnsupportedAlgorithm, name,
		)
	}
}

// String returns the selector name of the algorithm.
func (al Algorithm) String() string {
	va, err := al.variant()
	if err != nil {
		return "unknown"
	}

	return va.name
}

// HexLength returns the digest length in hex characters,
// or 0 for an unknown algorithm.
func (al Algorithm) HexLength() int {
	va, err := al.variant()
	if err != nil {
		return 0
	}

	return va.hexLength
}

// Sum computes the checksum of message and returns it as a
// lowercase hex digest: 64 characters for SHA-256, 32 for
// MD5. A zero-length message is valid.
func Sum(al Algorithm, message []byte) (string, error) {
	const errCtx = "computing checksum"

	va, err := al.variant()
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	block, err := buildBlocks(message, va.blockLittleEndian)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	state := make([]uint32, len(va.initVector))
	copy(state, va.initVector)

	// The state vector carries a data dependency from each
	// chunk to the next, so chunks fold in strictly in
	// block order.
	for len(block) > 0 {
		va.compress(state, block[:blockWords])
		block = block[blockWords:]
	}

	return va.encode(state), nil
}

// SumLength computes the checksum of the first size bytes
// of message. It exists for callers that fill a larger
// buffer and track the valid length separately, such as a
// bounded stdin read.
func SumLength(
	al Algorithm,
	message []byte,
	size int,
) (string, error) {
	const errCtx = "computing checksum"

	if message == nil && size > 0 {
		return "", fmt.Errorf(
			"%s: %w: no buffer for length %d",
			errCtx, ErrInvalidInput, size,
		)
	}

	if size < 0 || size > len(message) {
		return "", fmt.Errorf(
			"%s: %w: length %d outside buffer of %d bytes",
			errCtx, ErrInvalidInput, size, len(message),
		)
	}

	return Sum(al, message[:size])
}
