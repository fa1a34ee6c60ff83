package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmitter() (*Arena, *Block, *IREmitter) {
	arena := NewArena()
	block := arena.NewBlock()
	return arena, block, NewIREmitter(arena, block, nil)
}

func TestFPAddRejectsMismatchedWidths(t *testing.T) {
	_, _, e := newTestEmitter()
	_, err := e.FPAdd(ImmF32(1), ImmF64(2), FpControl{})
	require.Error(t, err)

	sum, err := e.FPAdd(ImmF32(1), ImmF32(2), FpControl{})
	require.NoError(t, err)
	assert.Equal(t, TypeF32, sum.Type())
	assert.Equal(t, OpcodeFPAdd32, sum.Inst().Opcode())
}

func TestFPAddDispatchesByWidth(t *testing.T) {
	_, _, e := newTestEmitter()
	sum64, err := e.FPAdd(ImmF64(1), ImmF64(2), FpControl{})
	require.NoError(t, err)
	assert.Equal(t, OpcodeFPAdd64, sum64.Inst().Opcode())
}

func TestCompositeConstructAndExtractRoundTrip(t *testing.T) {
	_, _, e := newTestEmitter()
	a, b, c := ImmF32(1), ImmF32(2), ImmF32(3)

	vec, err := e.CompositeConstruct(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, TypeF32x3, vec.Type())

	second, err := e.CompositeExtract(vec, 1)
	require.NoError(t, err)
	assert.Equal(t, TypeF32, second.Type())

	_, err = e.CompositeExtract(vec, 3)
	require.Error(t, err)
}

func TestBitCastPairIsLossless(t *testing.T) {
	_, _, e := newTestEmitter()
	asU32, err := e.BitCast(ImmF32(1.5), TypeU32)
	require.NoError(t, err)
	assert.Equal(t, TypeU32, asU32.Type())

	backToF32, err := e.BitCast(asU32, TypeF32)
	require.NoError(t, err)
	assert.Equal(t, TypeF32, backToF32.Type())
	assert.Equal(t, OpcodeBitCastF32U32, backToF32.Inst().Opcode())

	_, err = e.BitCast(ImmU32(1), TypeU64)
	require.Error(t, err)
}

func TestBranchConditionalPatchesPredecessors(t *testing.T) {
	arena, block, e := newTestEmitter()
	trueBlock := arena.NewBlock()
	falseBlock := arena.NewBlock()

	require.NoError(t, e.BranchConditional(ImmU1(true), trueBlock, falseBlock))
	assert.Contains(t, trueBlock.ImmediatePredecessors(), block)
	assert.Contains(t, falseBlock.ImmediatePredecessors(), block)
	assert.Equal(t, []*Block{trueBlock, falseBlock}, block.Successors())

	err := e.BranchConditional(ImmU32(1), trueBlock, falseBlock)
	require.Error(t, err)
}

func TestConvertFloatToIntDispatchesByDestWidth(t *testing.T) {
	_, _, e := newTestEmitter()

	narrow, err := e.ConvertFloatToInt(ImmF32(1), 16, true)
	require.NoError(t, err)
	assert.Equal(t, TypeU16, narrow.Type())
	assert.Equal(t, OpcodeConvertS16F32, narrow.Inst().Opcode())

	wide, err := e.ConvertFloatToInt(ImmF64(1), 64, false)
	require.NoError(t, err)
	assert.Equal(t, TypeU64, wide.Type())
	assert.Equal(t, OpcodeConvertU64F64, wide.Inst().Opcode())

	_, err = e.ConvertFloatToInt(ImmF32(1), 8, true)
	require.Error(t, err)
}

func TestUndefInsertsBeforeExistingTerminator(t *testing.T) {
	_, block, e := newTestEmitter()
	require.NoError(t, e.Return())

	undef, err := e.Undef(TypeU32)
	require.NoError(t, err)

	insts := block.Instructions()
	require.Len(t, insts, 2)
	assert.Equal(t, undef.Inst(), insts[0])
	assert.Equal(t, OpcodeReturn, insts[1].Opcode())
}

func TestLoadStoreGlobalWidths(t *testing.T) {
	_, _, e := newTestEmitter()
	addr := ImmU64(0x1000)

	v, err := e.LoadGlobal(addr, 32, false)
	require.NoError(t, err)
	assert.Equal(t, OpcodeLoadGlobalU32, v.Inst().Opcode())

	v, err = e.LoadGlobal(addr, 8, true)
	require.NoError(t, err)
	assert.Equal(t, OpcodeLoadGlobalS8, v.Inst().Opcode())

	require.NoError(t, e.WriteGlobal(addr, ImmU32(7), 32))

	_, err = e.LoadGlobal(ImmU32(1), 32, false)
	require.Error(t, err)
}
