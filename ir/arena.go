package ir

// pageSize bounds the page granularity of the arena's bump allocators.
const pageSize = 128

// pool is a page-based bump allocator: stable pointers for the life of the
// arena, no per-allocation heap traffic once a page is warm, and O(pages)
// Reset for reuse across functions.
type pool[T any] struct {
	pages []*[pageSize]T
	index int
}

func (p *pool[T]) allocate() *T {
	if p.index == pageSize {
		p.pages = append(p.pages, new([pageSize]T))
		p.index = 0
	}
	ret := &p.pages[len(p.pages)-1][p.index]
	p.index++
	return ret
}

func (p *pool[T]) reset() {
	for _, page := range p.pages {
		for i := range page {
			var zero T
			page[i] = zero
		}
	}
	p.pages = p.pages[:0]
	p.index = pageSize
}

// Arena exclusively owns every Instruction and Block for the lifetime of a
// Program. All cross-instruction references are non-owning
// *Instruction/*Block pointers into this arena; nothing is reclaimed until
// Reset, matching a single-threaded, cooperative resource model: one arena
// per in-flight compile, handed off rather than shared.
type Arena struct {
	instructions pool[Instruction]
	blocks       pool[Block]
	nextInstID   int
	nextBlockID  int
}

// NewArena returns an empty, ready-to-use Arena.
func NewArena() *Arena {
	a := &Arena{}
	a.instructions.index = pageSize
	a.blocks.index = pageSize
	return a
}

// Reset releases every instruction and block back to the arena for reuse.
// Precondition: no live handles from a previous use are retained by the
// caller past this call.
func (a *Arena) Reset() {
	a.instructions.reset()
	a.blocks.reset()
	a.nextInstID = 0
	a.nextBlockID = 0
}

// NewBlock allocates a fresh, empty Block owned by this arena.
func (a *Arena) NewBlock() *Block {
	b := a.blocks.allocate()
	b.id = a.nextBlockID
	a.nextBlockID++
	b.preds = b.preds[:0]
	b.root, b.tail = nil, nil
	return b
}

// insert validates arity/operand types against op's static signature,
// allocates an Instruction from the arena, wires up use-lists for every
// InstRef operand, and splices it into block at position.
func (a *Arena) insert(block *Block, position insertPosition, op Opcode, flags interface{}, operands []Value) (*Instruction, error) {
	resultType, operandTypes, variadic, ok := SignatureOf(op)
	if !ok {
		return nil, InvalidArgumentOpcodef(op, "unknown opcode")
	}
	if !variadic {
		if len(operands) != len(operandTypes) {
			return nil, InvalidArgumentOpcodef(op, "expected %d operands, got %d", len(operandTypes), len(operands))
		}
		for n, want := range operandTypes {
			if want == TypeVoid {
				continue // signature deliberately underspecified (e.g. CompositeExtract's source).
			}
			if got := operands[n].Type(); got != want {
				return nil, InvalidArgumentOpcodef(op, "operand %d: expected %s, got %s", n, want, got)
			}
		}
	}

	inst := a.instructions.allocate()
	inst.id = a.nextInstID
	a.nextInstID++
	inst.opcode = op
	inst.resultType = resultType
	inst.flags = flags
	inst.operands = append(inst.operands[:0], operands...)
	inst.target, inst.target2 = nil, nil
	inst.phiBlocks = inst.phiBlocks[:0]
	inst.pseudo = nil
	inst.block = nil
	inst.prev, inst.next = nil, nil
	inst.useList = inst.useList[:0]
	inst.invalid = false

	for idx, v := range inst.operands {
		if v.inst != nil {
			v.inst.addUse(inst, idx)
		}
	}

	block.insertAt(position, inst)
	return inst, nil
}

// prependPhi inserts an operand-less Phi at the head of block, enforcing
// the "phi before others" block invariant.
func (a *Arena) prependPhi(block *Block) *Instruction {
	inst := a.instructions.allocate()
	inst.id = a.nextInstID
	a.nextInstID++
	inst.opcode = OpcodePhi
	inst.resultType = TypeVoid
	inst.flags = nil
	inst.operands = inst.operands[:0]
	inst.phiBlocks = inst.phiBlocks[:0]
	inst.target, inst.target2 = nil, nil
	inst.pseudo = nil
	inst.block = nil
	inst.prev, inst.next = nil, nil
	inst.useList = inst.useList[:0]
	inst.invalid = false

	block.insertAt(positionHead, inst)
	return inst
}

// NewPhi allocates a Phi at the head of block with the given result type.
// The SSA construction pass is the only caller: a phi's type is known only
// once the virtual variable it stands in for has been identified.
func (a *Arena) NewPhi(block *Block, resultType Type) *Instruction {
	phi := a.prependPhi(block)
	phi.resultType = resultType
	return phi
}

// AppendPhiOperand appends value as the operand contributed by pred,
// maintaining use-list bookkeeping.
func AppendPhiOperand(phi *Instruction, pred *Block, value Value) {
	phi.appendOperand(value)
	phi.phiBlocks = append(phi.phiBlocks, pred)
}

var undefOpcodeByType = map[Type]Opcode{
	TypeU1:  OpcodeUndefU1,
	TypeU32: OpcodeUndefU32,
	TypeU64: OpcodeUndefU64,
	TypeF32: OpcodeUndefF32,
	TypeF64: OpcodeUndefF64,
}

// InsertUndef allocates an Undef instruction of type t and splices it in
// immediately before block's first non-phi instruction — after every phi,
// whereas a freshly prepended phi goes to the very head — so it never lands after a terminator
// the frontend has already emitted. Used by the SSA construction pass when
// an unreachable read or a collapsed phi has no live value to produce.
func InsertUndef(a *Arena, block *Block, t Type) (Value, error) {
	op, ok := undefOpcodeByType[t]
	if !ok {
		return Value{}, InvalidArgumentTypef(t, "Undef: unsupported type")
	}
	inst, err := a.insert(block, positionBeforeFirstNonPhi, op, nil, nil)
	if err != nil {
		return Value{}, err
	}
	return Value{inst: inst}, nil
}

// Remove detaches target from its block's instruction list and invalidates
// it. Precondition: target.Uses() == 0. Used by the SSA construction pass
// to erase Get/Set virtual-variable instructions once lowered away.
func Remove(target *Instruction) error {
	if target.Uses() != 0 {
		return InvalidArgumentOpcodef(target.opcode, "cannot remove instruction with %d live uses", target.Uses())
	}
	if target.block != nil {
		target.block.detach(target)
	}
	return Invalidate(target)
}

// ReplaceUsesWith substitutes replacement for target in every instruction
// holding target as an operand (value operand or phi argument), adjusting
// use-lists so target.Uses() == 0 afterwards and replacement's use-count
// grows by (at least) target's former use-count.
func ReplaceUsesWith(target *Instruction, replacement Value) {
	if target == replacement.inst {
		return
	}
	uses := target.useList
	target.useList = nil
	for _, r := range uses {
		r.user.operands[r.index] = replacement
		if replacement.inst != nil {
			replacement.inst.addUse(r.user, r.index)
		}
	}
}

// Invalidate clears target's operands (releasing their uses) and marks it
// Invalid. Precondition: target.Uses() == 0.
func Invalidate(target *Instruction) error {
	if target.Uses() != 0 {
		return InvalidArgumentOpcodef(target.opcode, "cannot invalidate instruction with %d live uses", target.Uses())
	}
	for idx, op := range target.operands {
		if op.inst != nil {
			op.inst.removeUse(target, idx)
		}
	}
	target.operands = nil
	target.phiBlocks = nil
	target.flags = nil
	target.opcode = OpcodeInvalidated
	target.resultType = TypeVoid
	target.invalid = true
	return nil
}

// AttachPseudo records sibling as a secondary consumer of parent, used to
// model multi-output operations.
func AttachPseudo(parent, sibling *Instruction) {
	parent.pseudo = sibling
}

// GetAssociatedPseudo returns parent's attached pseudo-op if its opcode
// matches want.
func GetAssociatedPseudo(parent *Instruction, want Opcode) (*Instruction, bool) {
	if parent.pseudo != nil && parent.pseudo.opcode == want {
		return parent.pseudo, true
	}
	return nil, false
}
