// Package engine computes SHA-256 and MD5 checksums over an
// in-memory message buffer. It implements the block padding,
// message scheduling, and compression rounds of both
// algorithms directly, and renders digests as fixed-length
// lowercase hex strings. The constant tables are read-only
// and every invocation owns its block buffer and state
// vector, so concurrent calls never share mutable state.
package engine
