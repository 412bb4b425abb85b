package engine

// bitBuffer is a block buffer addressed bit by bit. Bit 0
// is the most significant bit of word 0, so a message byte
// packs most-significant-bit first.
type bitBuffer []uint32

func (bb bitBuffer) set(bit uint64) {
	bb[bit>>5] |= uint32(1) << (31 - bit&31)
}

func (bb bitBuffer) clear(bit uint64) {
	bb[bit>>5] &^= uint32(1) << (31 - bit&31)
}

func (bb bitBuffer) test(bit uint64) bool {
	return bb[bit>>5]>>(31-bit&31)&1 == 1
}
