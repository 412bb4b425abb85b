package engine

import (
	"fmt"
	"math/bits"
	"strings"
)

var sha256Variant = variant{
	name:       "sha256",
	hexLength:  64,
	initVector: sha256IV[:],
	compress:   sha256Compress,
	encode:     sha256Encode,
}

// sha256IV is the FIPS 180-4 initial hash value: the first
// 32 bits of the fractional parts of the square roots of
// the first eight primes.
var sha256IV = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// sha256K holds the 64 round constants: the first 32 bits
// of the fractional parts of the cube roots of the first
// 64 primes.
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

func choose(e, f, g uint32) uint32 {
	return e&f ^ ^e&g
}

func majority(a, b, c uint32) uint32 {
	return a&b ^ a&c ^ b&c
}

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ x>>3
}

func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ x>>10
}

// sha256Compress folds one 16-word chunk into the 8-word
// state. All additions wrap mod 2^32.
func sha256Compress(state []uint32, chunk []uint32) {
	// Expand the chunk into the 64-word message schedule.
	var wo [64]uint32

	copy(wo[:blockWords], chunk)

	for t := blockWords; t < 64; t++ {
		wo[t] = smallSigma1(wo[t-2]) + wo[t-7] +
			smallSigma0(wo[t-15]) + wo[t-16]
	}

	a := state[0]
	b := state[1]
	c := state[2]
	d := state[3]
	e := state[4]
	f := state[5]
	g := state[6]
	h := state[7]

	for t := 0; t < 64; t++ {
		t1 := h + bigSigma1(e) + choose(e, f, g) +
			sha256K[t] + wo[t]
		t2 := bigSigma0(a) + majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// sha256Encode formats the state as 64 lowercase hex
// characters, big-endian word order.
func sha256Encode(state []uint32) string {
	var sb strings.Builder

	for _, wo := range state {
		fmt.Fprintf(&sb, "%08x", wo)
	}

	return sb.String()
}
