package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachedPseudoResolvesByOpcode(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	main, err := arena.insert(block, positionEnd, OpcodeGetCbuf, nil, []Value{ImmU32(0), ImmU32(0)})
	require.NoError(t, err)
	sparse, err := arena.insert(block, positionEnd, OpcodeGetSparseFromOp, nil, nil)
	require.NoError(t, err)
	AttachPseudo(main, sparse)

	got, ok := GetAssociatedPseudo(main, OpcodeGetSparseFromOp)
	require.True(t, ok)
	assert.Equal(t, sparse, got)

	_, ok = GetAssociatedPseudo(main, OpcodePhi)
	assert.False(t, ok)
}

func TestFunctionOrdersReflectCFG(t *testing.T) {
	arena := NewArena()
	fn := NewFunction(arena, "f")
	a := fn.NewBlock("a")
	b := fn.NewBlock("b")

	e := NewIREmitter(arena, fn.Entry, nil)
	require.NoError(t, e.BranchConditional(ImmU1(true), a, b))
	NewIREmitter(arena, a, nil)
	NewIREmitter(arena, b, nil)
	require.NoError(t, NewIREmitter(arena, a, nil).Return())
	require.NoError(t, NewIREmitter(arena, b, nil).Return())

	fn.RecomputeOrders()
	rpo := fn.ReversePostOrder()
	require.Len(t, rpo, 3)
	assert.Equal(t, fn.Entry, rpo[0])
}

func TestProgramFormatIncludesEveryFunction(t *testing.T) {
	arena := NewArena()
	fn := NewFunction(arena, "f")
	require.NoError(t, NewIREmitter(arena, fn.Entry, nil).Return())

	prog := NewProgram()
	prog.AddFunction(fn)
	out := prog.Format()
	assert.Contains(t, out, "func f {")
	assert.Contains(t, out, "Return")
}
