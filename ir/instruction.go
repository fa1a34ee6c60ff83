package ir

import (
	"fmt"
	"strings"
)

// useRecord is one entry in an Instruction's use-list: a pointer to the
// instruction holding a reference plus the operand slot it occupies, so
// ReplaceUsesWith can patch every holder in place instead of rescanning
// the whole function.
type useRecord struct {
	user  *Instruction
	index int
}

// Instruction is an arena-owned IR instruction. Since Go has no tagged
// union, every family of opcode reuses the same flattened shape and
// interprets the fields it needs; a table keyed by Opcode (opcode_table.go)
// describes which fields are meaningful for a given opcode.
type Instruction struct {
	id         int
	opcode     Opcode
	resultType Type
	flags      interface{}
	operands   []Value

	// target/target2 hold branch destinations. Branch uses target only;
	// BranchConditional uses both; LoopMerge/SelectionMerge use target
	// (merge block) and target2 (continue target, LoopMerge only).
	target, target2 *Block

	// phiBlocks is parallel to operands for a Phi instruction: phiBlocks[i]
	// is the predecessor block that contributes operands[i].
	phiBlocks []*Block

	// pseudo is an optional sibling consumer instruction attached via
	// AttachPseudo.
	pseudo *Instruction

	block      *Block
	prev, next *Instruction

	useList []useRecord
	invalid bool
}

// ID returns a stable, arena-local debug identifier. It has no semantic
// meaning beyond producing readable Format() output.
func (i *Instruction) ID() int { return i.id }

// Opcode returns the instruction's opcode.
func (i *Instruction) Opcode() Opcode { return i.opcode }

// ResultType returns the type of the value this instruction produces.
// Instructions with no result (stores, branches, Set*) report TypeVoid.
func (i *Instruction) ResultType() Type { return i.resultType }

// Flags returns the opcode-family-specific flags payload attached at
// insert time (an FpControl, a TextureInstInfo, or nil).
func (i *Instruction) Flags() interface{} { return i.flags }

// Arg returns the n-th value operand.
func (i *Instruction) Arg(n int) Value { return i.operands[n] }

// NumArgs returns the number of value operands.
func (i *Instruction) NumArgs() int { return len(i.operands) }

// Args returns the value operands. Callers must not retain or mutate the
// returned slice past the next arena mutation.
func (i *Instruction) Args() []Value { return i.operands }

// Uses returns the number of live references to this instruction from
// other instructions' operand lists or phi arguments.
func (i *Instruction) Uses() int { return len(i.useList) }

// Block returns the block this instruction is inserted into, or nil.
func (i *Instruction) Block() *Block { return i.block }

// Next returns the next instruction laid out after this one in its block.
func (i *Instruction) Next() *Instruction { return i.next }

// Prev returns the previous instruction laid out before this one in its block.
func (i *Instruction) Prev() *Instruction { return i.prev }

// Invalid reports whether Invalidate has been called on this instruction.
func (i *Instruction) Invalid() bool { return i.invalid }

// BranchTarget returns the primary branch/merge target, or nil.
func (i *Instruction) BranchTarget() *Block { return i.target }

// BranchTarget2 returns the secondary branch/continue target, or nil.
func (i *Instruction) BranchTarget2() *Block { return i.target2 }

// Pseudo returns the attached pseudo-op sibling, if any.
func (i *Instruction) Pseudo() *Instruction { return i.pseudo }

// IsPhi reports whether this is the distinguished Phi opcode.
func (i *Instruction) IsPhi() bool { return i.opcode == OpcodePhi }

// AsValue returns a Value referencing this instruction's result. Callers
// outside the package use this instead of constructing a Value directly.
func (i *Instruction) AsValue() Value { return Value{inst: i} }

// Users returns the distinct instructions holding a reference to this
// instruction's result, in first-use order. Unlike Uses, which counts
// operand slots, an instruction referencing this one through more than one
// slot (rare, e.g. a self-select) is reported once.
func (i *Instruction) Users() []*Instruction {
	var out []*Instruction
	seen := make(map[*Instruction]bool, len(i.useList))
	for _, r := range i.useList {
		if !seen[r.user] {
			seen[r.user] = true
			out = append(out, r.user)
		}
	}
	return out
}

// aliasTarget exists purely so Value.Resolve has something to call; this
// core never rewrites an instruction into an alias of another (that is a
// canonicalization-pass concern, out of scope), so it never has anything
// to report.
func (i *Instruction) aliasTarget() (Value, bool) { return Value{}, false }

// PhiOperand returns the (predecessor, value) pair for the i-th Phi
// argument, in predecessor-insertion order.
func (i *Instruction) PhiOperand(n int) (*Block, Value) {
	return i.phiBlocks[n], i.operands[n]
}

// addUse records that user references this instruction at operand index.
func (i *Instruction) addUse(user *Instruction, index int) {
	i.useList = append(i.useList, useRecord{user: user, index: index})
}

// removeUse drops the first use-list entry that exactly matches
// (user, index); used when an operand slot is overwritten in place
// (AppendPhiOperand never overwrites, ReplaceUsesWith clears the whole list).
func (i *Instruction) removeUse(user *Instruction, index int) {
	for n, r := range i.useList {
		if r.user == user && r.index == index {
			i.useList = append(i.useList[:n], i.useList[n+1:]...)
			return
		}
	}
}

// setOperand assigns operands[index] = v, maintaining v's use-list if v is
// an instruction reference, and releasing the use the previous occupant
// held at that slot.
func (i *Instruction) setOperand(index int, v Value) {
	old := i.operands[index]
	if old.inst != nil {
		old.inst.removeUse(i, index)
	}
	i.operands[index] = v
	if v.inst != nil {
		v.inst.addUse(i, index)
	}
}

// appendOperand appends v to the operand list, maintaining use-lists.
func (i *Instruction) appendOperand(v Value) {
	idx := len(i.operands)
	i.operands = append(i.operands, v)
	if v.inst != nil {
		v.inst.addUse(i, idx)
	}
}

// Format renders a single debug line for this instruction. This is a
// developer-facing dump (used by Program.Format and the cmd/shaderc
// tool), not the excluded textual-codegen backend.
func (i *Instruction) Format() string {
	var b strings.Builder
	if i.invalid {
		fmt.Fprintf(&b, "%%%d = <invalidated %s>", i.id, i.opcode)
		return b.String()
	}
	if i.resultType != TypeVoid {
		fmt.Fprintf(&b, "%%%d:%s = %s", i.id, i.resultType, i.opcode)
	} else {
		fmt.Fprintf(&b, "%s", i.opcode)
	}
	if i.opcode == OpcodePhi {
		parts := make([]string, len(i.operands))
		for n := range i.operands {
			parts[n] = fmt.Sprintf("[%s: %s]", i.phiBlocks[n].Name(), i.operands[n])
		}
		b.WriteString(" " + strings.Join(parts, ", "))
		return b.String()
	}
	parts := make([]string, 0, len(i.operands)+2)
	for _, op := range i.operands {
		parts = append(parts, op.String())
	}
	if i.target != nil {
		parts = append(parts, i.target.Name())
	}
	if i.target2 != nil {
		parts = append(parts, i.target2.Name())
	}
	if len(parts) > 0 {
		b.WriteString(" " + strings.Join(parts, ", "))
	}
	if i.pseudo != nil {
		fmt.Fprintf(&b, " (pseudo: %%%d)", i.pseudo.id)
	}
	return b.String()
}
