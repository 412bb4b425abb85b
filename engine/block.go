package engine

import (
	"math"
	"math/bits"
)

const (
	// blockWords is the width of one 512-bit block in
	// 32-bit words.
	blockWords = 16

	blockBits = 512

	// trailerBits is the terminator bit plus the 64-bit
	// message length field.
	trailerBits = 65
)

// maxMessageSize keeps size*8 and the padded block buffer
// length within int range.
const maxMessageSize = math.MaxInt/8 - blockBits

// blockPlan returns the number of 512-bit blocks a message
// of size bytes pads out to, and the number of zero bits
// between the terminator bit and the length field.
//
// The plan always satisfies the layout identity
// blocks*512 == size*8 + 1 + zeros + 64.
func blockPlan(size int) (blocks int, zeros int) {
	blocks = (size + 63) / 64

	// A final chunk whose tail cannot hold the terminator
	// bit plus the length field forces an extra chunk. The
	// mod == 0 branch also gives the empty message its lone
	// padding chunk.
	if mod := (size * 8) % blockBits; mod > 447 || mod == 0 {
		blocks++
	}

	zeros = blocks*blockBits - size*8 - trailerBits

	return blocks, zeros
}

// buildBlocks lays the message out as a padded block
// sequence: message bits, a single 1 bit, zero padding, and
// the 64-bit bit length in the final two words.
//
// With littleEndian set, every word except the two length
// words is byte-swapped after packing. MD5 defines its
// internal word representation as little-endian while the
// per-byte packing above is big-endian; the length words
// are instead written directly as little-endian halves.
func buildBlocks(
	message []byte,
	littleEndian bool,
) (bitBuffer, error) {
	size := len(message)

	if size > maxMessageSize {
		return nil, ErrMessageTooLarge
	}

	blocks, _ := blockPlan(size)

	// A fresh buffer is already zero, which covers the
	// padding bits of the plan.
	buf := make(bitBuffer, blocks*blockWords)

	for index, by := range message {
		for bit := 0; bit < 8; bit++ {
			if by&(1<<(7-bit)) != 0 {
				buf.set(uint64(index)*8 + uint64(bit))
			}
		}
	}

	length := uint64(size) * 8

	// Terminator bit directly after the last message bit.
	buf.set(length)

	last := blocks * blockWords

	if littleEndian {
		for index := 0; index < last-2; index++ {
			buf[index] = bits.ReverseBytes32(buf[index])
		}

		buf[last-2] = uint32(length)
		buf[last-1] = uint32(length >> 32)
	} else {
		buf[last-2] = uint32(length >> 32)
		buf[last-1] = uint32(length)
	}

	return buf, nil
}
