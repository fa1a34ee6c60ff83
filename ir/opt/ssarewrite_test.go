package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmulationChannel/yuzu/ir"
)

func noSetOrGetRegisterRemains(t *testing.T, fn *ir.Function) {
	for _, b := range fn.Blocks() {
		for _, inst := range b.Instructions() {
			switch inst.Opcode() {
			case ir.OpcodeGetRegister, ir.OpcodeSetRegister,
				ir.OpcodeGetPred, ir.OpcodeSetPred,
				ir.OpcodeGetZFlag, ir.OpcodeSetZFlag,
				ir.OpcodeGetGotoVariable, ir.OpcodeSetGotoVariable,
				ir.OpcodeGetIndirectBranchVariable, ir.OpcodeSetIndirectBranchVariable:
				t.Fatalf("block %s still contains %s after SSA construction", b.Name(), inst.Opcode())
			}
		}
	}
}

func everyPhiPrecedesNonPhi(t *testing.T, fn *ir.Function) {
	for _, b := range fn.Blocks() {
		seenNonPhi := false
		for _, inst := range b.Instructions() {
			if inst.IsPhi() {
				assert.False(t, seenNonPhi, "block %s: phi after a non-phi instruction", b.Name())
			} else {
				seenNonPhi = true
			}
		}
	}
}

// TestStraightLineEliminatesRegister covers the straight-line scenario: a
// write followed by a read in the same block resolves directly to the
// written value, with no phi at all.
func TestStraightLineEliminatesRegister(t *testing.T) {
	arena := ir.NewArena()
	fn := ir.NewFunction(arena, "straight_line")
	e := ir.NewIREmitter(arena, fn.Entry, nil)

	require.NoError(t, e.SetReg(ir.Reg(0), ir.ImmU32(42)))
	val, err := e.GetReg(ir.Reg(0))
	require.NoError(t, err)
	require.NoError(t, e.Return(val))
	userOfGet := val.Inst()

	stats, err := ConstructSSA(fn)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PhisCreated)

	noSetOrGetRegisterRemains(t, fn)
	ret := fn.Entry.Instructions()[len(fn.Entry.Instructions())-1]
	assert.Equal(t, ir.OpcodeReturn, ret.Opcode())
	assert.True(t, ret.Args()[0].Equal(ir.ImmU32(42)))
	assert.True(t, userOfGet.Invalid())
}

// TestDiamondMergesWithPhi covers two predecessors writing different
// values to the same register, merged by a single phi at the join block.
func TestDiamondMergesWithPhi(t *testing.T) {
	arena := ir.NewArena()
	fn := ir.NewFunction(arena, "diamond")
	left := fn.NewBlock("left")
	right := fn.NewBlock("right")
	merge := fn.NewBlock("merge")

	entryEmit := ir.NewIREmitter(arena, fn.Entry, nil)
	require.NoError(t, entryEmit.BranchConditional(ir.ImmU1(true), left, right))

	leftEmit := ir.NewIREmitter(arena, left, nil)
	require.NoError(t, leftEmit.SetReg(ir.Reg(0), ir.ImmU32(1)))
	require.NoError(t, leftEmit.Branch(merge))

	rightEmit := ir.NewIREmitter(arena, right, nil)
	require.NoError(t, rightEmit.SetReg(ir.Reg(0), ir.ImmU32(2)))
	require.NoError(t, rightEmit.Branch(merge))

	mergeEmit := ir.NewIREmitter(arena, merge, nil)
	val, err := mergeEmit.GetReg(ir.Reg(0))
	require.NoError(t, err)
	require.NoError(t, mergeEmit.Return(val))

	stats, err := ConstructSSA(fn)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PhisCreated)
	assert.Equal(t, 0, stats.PhisElided)

	noSetOrGetRegisterRemains(t, fn)
	everyPhiPrecedesNonPhi(t, fn)

	phis := 0
	for _, inst := range merge.Instructions() {
		if inst.IsPhi() {
			phis++
			require.Equal(t, 2, inst.NumArgs())
		}
	}
	assert.Equal(t, 1, phis)
}

// TestLoopCarriesPhiThroughHeader covers a loop header whose phi cannot be
// completed until the latch (visited after the header in reverse
// post-order) has been filled.
func TestLoopCarriesPhiThroughHeader(t *testing.T) {
	arena := ir.NewArena()
	fn := ir.NewFunction(arena, "loop")
	header := fn.NewBlock("header")
	body := fn.NewBlock("body")
	exit := fn.NewBlock("exit")

	entryEmit := ir.NewIREmitter(arena, fn.Entry, nil)
	require.NoError(t, entryEmit.SetReg(ir.Reg(0), ir.ImmU32(0)))
	require.NoError(t, entryEmit.Branch(header))

	headerEmit := ir.NewIREmitter(arena, header, nil)
	require.NoError(t, headerEmit.LoopMerge(exit, body))
	require.NoError(t, headerEmit.BranchConditional(ir.ImmU1(true), body, exit))

	bodyEmit := ir.NewIREmitter(arena, body, nil)
	cur, err := bodyEmit.GetReg(ir.Reg(0))
	require.NoError(t, err)
	next, err := bodyEmit.IAdd(cur, ir.ImmU32(1))
	require.NoError(t, err)
	require.NoError(t, bodyEmit.SetReg(ir.Reg(0), next))
	require.NoError(t, bodyEmit.Branch(header))

	exitEmit := ir.NewIREmitter(arena, exit, nil)
	final, err := exitEmit.GetReg(ir.Reg(0))
	require.NoError(t, err)
	require.NoError(t, exitEmit.Return(final))

	stats, err := ConstructSSA(fn)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.PhisCreated, 1)

	noSetOrGetRegisterRemains(t, fn)
	everyPhiPrecedesNonPhi(t, fn)

	headerHasPhi := false
	for _, inst := range header.Instructions() {
		if inst.IsPhi() {
			headerHasPhi = true
			assert.Equal(t, 2, inst.NumArgs())
		}
	}
	assert.True(t, headerHasPhi, "loop header should carry the induction variable's phi")
}

// TestUnreachableBlockReadProducesUndef covers the entry/unreachable-read
// edge case: reading a register with no live predecessor yields Undef
// rather than failing.
func TestUnreachableBlockReadProducesUndef(t *testing.T) {
	arena := ir.NewArena()
	fn := ir.NewFunction(arena, "no_writes")
	e := ir.NewIREmitter(arena, fn.Entry, nil)

	val, err := e.GetReg(ir.Reg(5))
	require.NoError(t, err)
	require.NoError(t, e.Return(val))

	stats, err := ConstructSSA(fn)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UndefsInserted)

	ret := fn.Entry.Instructions()[len(fn.Entry.Instructions())-1]
	assert.Equal(t, ir.OpcodeUndefU32, ret.Args()[0].Inst().Opcode())
}

// TestTrivialPhiCollapsesToSingleValue covers a phi whose every predecessor
// carries the same value: it must not survive construction.
func TestTrivialPhiCollapsesToSingleValue(t *testing.T) {
	arena := ir.NewArena()
	fn := ir.NewFunction(arena, "trivial_phi")
	left := fn.NewBlock("left")
	right := fn.NewBlock("right")
	merge := fn.NewBlock("merge")

	entryEmit := ir.NewIREmitter(arena, fn.Entry, nil)
	require.NoError(t, entryEmit.SetReg(ir.Reg(0), ir.ImmU32(7)))
	require.NoError(t, entryEmit.BranchConditional(ir.ImmU1(true), left, right))

	leftEmit := ir.NewIREmitter(arena, left, nil)
	require.NoError(t, leftEmit.Branch(merge))
	rightEmit := ir.NewIREmitter(arena, right, nil)
	require.NoError(t, rightEmit.Branch(merge))

	mergeEmit := ir.NewIREmitter(arena, merge, nil)
	val, err := mergeEmit.GetReg(ir.Reg(0))
	require.NoError(t, err)
	require.NoError(t, mergeEmit.Return(val))

	stats, err := ConstructSSA(fn)
	require.NoError(t, err)

	noSetOrGetRegisterRemains(t, fn)
	for _, inst := range merge.Instructions() {
		assert.False(t, inst.IsPhi(), "the only candidate phi merges a single value and must collapse")
	}
	retInMerge := merge.Instructions()[len(merge.Instructions())-1]
	assert.Equal(t, ir.OpcodeReturn, retInMerge.Opcode())
	assert.True(t, retInMerge.Args()[0].Equal(ir.ImmU32(7)))
	assert.GreaterOrEqual(t, stats.PhisCreated, 0)
}

// TestConstructSSAIsIdempotentOnRewrittenProgram re-running the pass over
// an already-constructed function (no remaining Get/Set) is a no-op.
func TestConstructSSAIsIdempotentOnRewrittenProgram(t *testing.T) {
	arena := ir.NewArena()
	fn := ir.NewFunction(arena, "idempotent")
	e := ir.NewIREmitter(arena, fn.Entry, nil)
	require.NoError(t, e.SetReg(ir.Reg(0), ir.ImmU32(1)))
	val, err := e.GetReg(ir.Reg(0))
	require.NoError(t, err)
	require.NoError(t, e.Return(val))

	_, err = ConstructSSA(fn)
	require.NoError(t, err)

	stats, err := ConstructSSA(fn)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.PhisCreated)
	assert.Equal(t, 0, stats.UndefsInserted)
}
