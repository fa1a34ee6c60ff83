package ir

import "fmt"

// insertPosition selects where within a block's instruction list a new
// instruction lands, keeping the "all phis precede non-phis" invariant an
// insertion-time property rather than something checked after the fact.
type insertPosition byte

const (
	positionEnd insertPosition = iota
	positionHead
	positionBeforeFirstNonPhi
)

// Block is an ordered sequence of instructions — all phi-nodes first, then
// everything else — together with its immediate predecessors in stable
// insertion order and at most two successors.
type Block struct {
	id   int
	name string

	root, tail  *Instruction
	firstNonPhi *Instruction

	preds []*Block
}

// Name returns a debug label for this block.
func (b *Block) Name() string {
	if b.name != "" {
		return b.name
	}
	return fmt.Sprintf("block%d", b.id)
}

// SetName overrides the debug label used by Format and String.
func (b *Block) SetName(name string) { b.name = name }

// ID returns the arena-local identifier of this block.
func (b *Block) ID() int { return b.id }

// String implements fmt.Stringer.
func (b *Block) String() string { return b.Name() }

// Root returns the first instruction in the block, or nil if empty.
func (b *Block) Root() *Instruction { return b.root }

// Instructions returns the instructions of this block, in order. The
// returned slice is a snapshot; iterate via Root()/Instruction.Next() if
// the traversal itself is expected to observe concurrent head insertions
// from SSA construction (prepended phis are always skipped safely either
// way since they are never Get*/Set* opcodes).
func (b *Block) Instructions() []*Instruction {
	var out []*Instruction
	for i := b.root; i != nil; i = i.next {
		out = append(out, i)
	}
	return out
}

// ImmediatePredecessors returns this block's predecessors in the order
// they were added.
func (b *Block) ImmediatePredecessors() []*Block { return b.preds }

// AddImmediatePredecessor appends pred to this block's predecessor list,
// idempotently and preserving insertion order.
func (b *Block) AddImmediatePredecessor(pred *Block) {
	for _, p := range b.preds {
		if p == pred {
			return
		}
	}
	b.preds = append(b.preds, pred)
}

// insertAt splices inst into the block's linked list at the requested
// position and maintains the firstNonPhi cursor used to enforce the
// phi-before-others invariant.
func (b *Block) insertAt(pos insertPosition, inst *Instruction) {
	inst.block = b
	switch pos {
	case positionHead:
		inst.prev = nil
		inst.next = b.root
		if b.root != nil {
			b.root.prev = inst
		}
		b.root = inst
		if b.tail == nil {
			b.tail = inst
		}
	case positionBeforeFirstNonPhi:
		if b.firstNonPhi == nil {
			inst.prev = b.tail
			inst.next = nil
			if b.tail != nil {
				b.tail.next = inst
			} else {
				b.root = inst
			}
			b.tail = inst
		} else {
			before := b.firstNonPhi
			inst.prev = before.prev
			inst.next = before
			before.prev = inst
			if inst.prev != nil {
				inst.prev.next = inst
			} else {
				b.root = inst
			}
		}
		b.firstNonPhi = inst
	default: // positionEnd
		inst.prev = b.tail
		inst.next = nil
		if b.tail != nil {
			b.tail.next = inst
		} else {
			b.root = inst
		}
		b.tail = inst
		if b.firstNonPhi == nil && inst.opcode != OpcodePhi {
			b.firstNonPhi = inst
		}
	}
}

// detach removes inst from the block's list without invalidating it; the
// instruction remains a valid arena handle (for introspection, or for an
// explicit later Invalidate) but is no longer reachable by traversing the
// block. Used by trivial-phi elimination to drop a collapsed phi while
// keeping the "all phis precede non-phis" invariant unconditionally true
// (see DESIGN.md for the tradeoff against re-splicing the dead phi in
// place instead).
func (b *Block) detach(inst *Instruction) {
	if inst.prev != nil {
		inst.prev.next = inst.next
	} else {
		b.root = inst.next
	}
	if inst.next != nil {
		inst.next.prev = inst.prev
	} else {
		b.tail = inst.prev
	}
	if b.firstNonPhi == inst {
		b.firstNonPhi = inst.next
	}
	inst.prev, inst.next, inst.block = nil, nil, nil
}
