package ir

import (
	"fmt"
	"math"
)

// Value is a tagged union of an immediate constant or a non-owning handle
// to an Instruction. Immediates carry their Type and payload inline;
// vector immediates additionally use elems. Equality on immediates is
// structural (Equal), equality on instruction references is handle
// identity (comparing the *Instruction pointer).
type Value struct {
	typ   Type
	inst  *Instruction
	imm   uint64
	elems [4]uint64
}

// Empty is the sentinel "no value" used by the SSA pass while collapsing
// trivial phis — the `same` accumulator starts empty.
var Empty Value

// IsEmpty reports whether v is the zero Value.
func (v Value) IsEmpty() bool {
	return v.typ == 0 && v.inst == nil
}

// IsImmediate reports whether v is an immediate constant rather than an
// instruction reference.
func (v Value) IsImmediate() bool {
	return v.typ != 0 && v.inst == nil
}

// IsInstRef reports whether v is a handle into the instruction arena.
func (v Value) IsInstRef() bool {
	return v.inst != nil
}

// Type returns the static type of this value.
func (v Value) Type() Type {
	if v.inst != nil {
		return v.inst.ResultType()
	}
	return v.typ
}

// Inst returns the referenced instruction, or nil if v is an immediate.
func (v Value) Inst() *Instruction {
	return v.inst
}

// Resolve follows an instruction reference through alias instructions to
// its underlying definition. No opcode of this IR aliases another
// (Instruction.aliasTarget never reports one), so Resolve returns v
// unchanged; collapsed phis are instead removed and their uses rewritten
// by the SSA construction pass.
func (v Value) Resolve() Value {
	for v.inst != nil {
		alias, ok := v.inst.aliasTarget()
		if !ok {
			return v
		}
		v = alias
	}
	return v
}

// Equal implements the structural-immediate/handle-identity equality rule.
func (v Value) Equal(o Value) bool {
	if v.inst != nil || o.inst != nil {
		return v.inst == o.inst
	}
	if v.typ != o.typ {
		return false
	}
	return v.imm == o.imm && v.elems == o.elems
}

// ImmU1 constructs a U1 immediate.
func ImmU1(b bool) Value {
	var u uint64
	if b {
		u = 1
	}
	return Value{typ: TypeU1, imm: u}
}

// ImmU8 constructs a U8 immediate.
func ImmU8(x uint8) Value { return Value{typ: TypeU8, imm: uint64(x)} }

// ImmU16 constructs a U16 immediate.
func ImmU16(x uint16) Value { return Value{typ: TypeU16, imm: uint64(x)} }

// ImmU32 constructs a U32 immediate.
func ImmU32(x uint32) Value { return Value{typ: TypeU32, imm: uint64(x)} }

// ImmS32 constructs a U32 immediate from a signed bit pattern.
func ImmS32(x int32) Value { return Value{typ: TypeU32, imm: uint64(uint32(x))} }

// ImmU64 constructs a U64 immediate.
func ImmU64(x uint64) Value { return Value{typ: TypeU64, imm: x} }

// ImmF32 constructs an F32 immediate.
func ImmF32(x float32) Value { return Value{typ: TypeF32, imm: uint64(math.Float32bits(x))} }

// ImmF64 constructs an F64 immediate.
func ImmF64(x float64) Value { return Value{typ: TypeF64, imm: math.Float64bits(x)} }

// ImmReg constructs an opaque Reg-typed immediate identifying a virtual register operand.
func ImmReg(r Reg) Value { return Value{typ: TypeReg, imm: uint64(r)} }

// ImmPred constructs an opaque Pred-typed immediate identifying a virtual predicate operand.
func ImmPred(p Pred) Value { return Value{typ: TypePred, imm: uint64(p)} }

// ImmAttribute constructs an opaque Attribute-typed immediate.
func ImmAttribute(a Attribute) Value { return Value{typ: TypeAttribute, imm: uint64(a)} }

// ImmVecU32 constructs a U32xN immediate from n<=4 lanes.
func ImmVecU32(lanes ...uint32) Value {
	v := Value{typ: VectorOf(TypeU32, len(lanes))}
	for i, l := range lanes {
		v.elems[i] = uint64(l)
	}
	return v
}

// AsU32 returns the raw payload for a U8/U16/U32 (or opaque Reg/Pred/Attribute) immediate.
func (v Value) AsU32() uint32 {
	return uint32(v.imm)
}

// AsU64 returns the raw payload for a U64 immediate.
func (v Value) AsU64() uint64 {
	return v.imm
}

// AsBool returns the payload of a U1 immediate.
func (v Value) AsBool() bool {
	return v.imm != 0
}

// AsF32 returns the payload of an F32 immediate.
func (v Value) AsF32() float32 {
	return math.Float32frombits(uint32(v.imm))
}

// AsF64 returns the payload of an F64 immediate.
func (v Value) AsF64() float64 {
	return math.Float64frombits(v.imm)
}

// AsReg returns the payload of an opaque Reg immediate.
func (v Value) AsReg() Reg { return Reg(v.imm) }

// AsPred returns the payload of an opaque Pred immediate.
func (v Value) AsPred() Pred { return Pred(v.imm) }

// AsAttribute returns the payload of an opaque Attribute immediate.
func (v Value) AsAttribute() Attribute { return Attribute(v.imm) }

// String implements fmt.Stringer, used only for debugging/Format.
func (v Value) String() string {
	switch {
	case v.inst != nil:
		return fmt.Sprintf("%%%d", v.inst.id)
	case v.IsEmpty():
		return "<empty>"
	default:
		switch v.typ {
		case TypeU1:
			return fmt.Sprintf("#%v", v.AsBool())
		case TypeF32:
			return fmt.Sprintf("#%v", v.AsF32())
		case TypeF64:
			return fmt.Sprintf("#%v", v.AsF64())
		case TypeReg:
			return v.AsReg().String()
		case TypePred:
			return v.AsPred().String()
		case TypeAttribute:
			return v.AsAttribute().String()
		default:
			return fmt.Sprintf("#%d", v.imm)
		}
	}
}
