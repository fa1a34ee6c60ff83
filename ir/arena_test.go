package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertValidatesOperandTypes(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	_, err := arena.insert(block, positionEnd, OpcodeIAdd32, nil, []Value{ImmU32(1), ImmF32(1)})
	require.Error(t, err)

	sum, err := arena.insert(block, positionEnd, OpcodeIAdd32, nil, []Value{ImmU32(1), ImmU32(2)})
	require.NoError(t, err)
	assert.Equal(t, TypeU32, sum.ResultType())
}

func TestInsertWiresUseList(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	a, err := arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Uses())

	sum, err := arena.insert(block, positionEnd, OpcodeIAdd32, nil, []Value{a.AsValue(), ImmU32(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, a.Uses())
	assert.Equal(t, a, sum.Args()[0].Inst())
}

func TestReplaceUsesWithMovesAllUsers(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	a, _ := arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)
	sum1, _ := arena.insert(block, positionEnd, OpcodeIAdd32, nil, []Value{a.AsValue(), ImmU32(1)})
	sum2, _ := arena.insert(block, positionEnd, OpcodeIAdd32, nil, []Value{a.AsValue(), ImmU32(2)})
	require.Equal(t, 2, a.Uses())

	b, _ := arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)
	ReplaceUsesWith(a, b.AsValue())

	assert.Equal(t, 0, a.Uses())
	assert.Equal(t, 2, b.Uses())
	assert.Equal(t, b, sum1.Args()[0].Inst())
	assert.Equal(t, b, sum2.Args()[0].Inst())
}

func TestInvalidateRejectsLiveUses(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	a, _ := arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)
	_, _ = arena.insert(block, positionEnd, OpcodeIAdd32, nil, []Value{a.AsValue(), ImmU32(1)})

	err := Invalidate(a)
	require.Error(t, err)

	ReplaceUsesWith(a, ImmU32(0))
	require.NoError(t, Invalidate(a))
	assert.True(t, a.Invalid())
	assert.Equal(t, OpcodeInvalidated, a.Opcode())
}

func TestRemoveDetachesFromBlock(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	a, _ := arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)
	b, _ := arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)

	require.NoError(t, Remove(a))
	assert.Equal(t, []*Instruction{b}, block.Instructions())
}

func TestPhiAlwaysPrecedesNonPhi(t *testing.T) {
	arena := NewArena()
	block := arena.NewBlock()

	_, _ = arena.insert(block, positionEnd, OpcodeUndefU32, nil, nil)
	phi := arena.NewPhi(block, TypeU32)

	insts := block.Instructions()
	require.Len(t, insts, 2)
	assert.True(t, insts[0].IsPhi())
	assert.Equal(t, phi, insts[0])
}
