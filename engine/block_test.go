package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/hashing/engine"
)

func TestBlockPlan_boundary_lengths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size   int
		blocks int
	}{
		{size: 0, blocks: 1},
		{size: 55, blocks: 1},
		{size: 56, blocks: 2},
		{size: 63, blocks: 2},
		{size: 64, blocks: 2},
		{size: 119, blocks: 2},
		{size: 120, blocks: 3},
	}

	for _, tc := range cases {
		blocks, zeros := engine.BlockPlanForTest(tc.size)

		assert.Equal(
			t, tc.blocks, blocks,
			"block count for %d bytes", tc.size,
		)

		// Layout identity: message bits, terminator bit,
		// zero padding, and length field fill the blocks
		// exactly.
		assert.Equal(
			t, blocks*512, tc.size*8+1+zeros+64,
			"layout identity for %d bytes", tc.size,
		)
	}
}

func TestBlockPlan_identity_holds_for_all_small_sizes(
	t *testing.T,
) {
	t.Parallel()

	for size := 0; size <= 512; size++ {
		blocks, zeros := engine.BlockPlanForTest(size)

		require.Positive(t, blocks, "size %d", size)
		require.GreaterOrEqual(t, zeros, 0, "size %d", size)
		require.Less(t, zeros, 512, "size %d", size)

		require.Equal(
			t, blocks*512, size*8+1+zeros+64,
			"size %d", size,
		)
	}
}

func TestBuildBlocks_big_endian_layout(t *testing.T) {
	t.Parallel()

	// 0xab = 10101011: packs MSB first into word 0.
	buf, err := engine.BuildBlocksForTest(
		[]byte{0xab}, false,
	)
	require.NoError(t, err)

	require.Len(t, buf, engine.BlockWordsForTest)

	// Message byte in the top 8 bits, terminator bit
	// directly after it.
	assert.Equal(t, uint32(0xab800000), buf[0])

	// Length field: 8 bits, big-endian halves.
	assert.Equal(t, uint32(0), buf[14])
	assert.Equal(t, uint32(8), buf[15])

	// Everything between is zero padding.
	for index := 1; index < 14; index++ {
		assert.Zero(t, buf[index], "word %d", index)
	}
}

func TestBuildBlocks_little_endian_layout(t *testing.T) {
	t.Parallel()

	buf, err := engine.BuildBlocksForTest(
		[]byte{0xab}, true,
	)
	require.NoError(t, err)

	require.Len(t, buf, engine.BlockWordsForTest)

	// The packed word 0xab800000 is byte-swapped for the
	// little-endian word convention.
	assert.Equal(t, uint32(0x000080ab), buf[0])

	// Length field halves are written directly, low word
	// first.
	assert.Equal(t, uint32(8), buf[14])
	assert.Equal(t, uint32(0), buf[15])
}

func TestBuildBlocks_empty_message(t *testing.T) {
	t.Parallel()

	buf, err := engine.BuildBlocksForTest(nil, false)
	require.NoError(t, err)

	require.Len(t, buf, engine.BlockWordsForTest)

	// Lone padding block: terminator bit at position 0,
	// zero length field.
	assert.Equal(t, uint32(0x80000000), buf[0])
	assert.Equal(t, uint32(0), buf[14])
	assert.Equal(t, uint32(0), buf[15])
}

func TestBuildBlocks_full_chunk_spills_into_extra_block(
	t *testing.T,
) {
	t.Parallel()

	message := make([]byte, 64)
	for index := range message {
		message[index] = 0xff
	}

	buf, err := engine.BuildBlocksForTest(message, false)
	require.NoError(t, err)

	require.Len(t, buf, 2*engine.BlockWordsForTest)

	// First block is all message bits.
	for index := 0; index < 16; index++ {
		assert.Equal(
			t, uint32(0xffffffff), buf[index],
			"word %d", index,
		)
	}

	// Second block holds terminator and length only.
	assert.Equal(t, uint32(0x80000000), buf[16])
	assert.Equal(t, uint32(0), buf[30])
	assert.Equal(t, uint32(512), buf[31])
}
