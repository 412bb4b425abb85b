package engine

// Exported aliases for testing internal types and
// functions from engine_test package.

// BitBuffer is an alias for bitBuffer.
type BitBuffer = bitBuffer

// BlockPlanForTest exposes blockPlan.
var BlockPlanForTest = blockPlan

// BuildBlocksForTest exposes buildBlocks.
var BuildBlocksForTest = buildBlocks

// BlockWordsForTest exposes blockWords.
const BlockWordsForTest = blockWords
