package frontend

import (
	"github.com/EmulationChannel/yuzu/ir"
)

// TranslatorVisitor drives one basic block's worth of emission. A real
// decoder would fetch raw instruction words, identify their mnemonic, and
// call Dispatch; this package stops short of that and lets callers (tests,
// cmd/shaderc) hand it mnemonics directly.
type TranslatorVisitor struct {
	Env  Environment
	Emit *ir.IREmitter
}

// NewTranslatorVisitor returns a visitor emitting into block via arena.
func NewTranslatorVisitor(env Environment, arena *ir.Arena, block *ir.Block) *TranslatorVisitor {
	return &TranslatorVisitor{Env: env, Emit: ir.NewIREmitter(arena, block, nil)}
}

// X reads general-purpose register n.
func (v *TranslatorVisitor) X(n uint32) (ir.Value, error) {
	return v.Emit.GetReg(ir.Reg(n))
}

// SetX writes general-purpose register n.
func (v *TranslatorVisitor) SetX(n uint32, val ir.Value) error {
	return v.Emit.SetReg(ir.Reg(n), val)
}

// F reads general-purpose register n reinterpreted as F32, mirroring how
// the hardware has no separate float register file.
func (v *TranslatorVisitor) F(n uint32) (ir.Value, error) {
	raw, err := v.X(n)
	if err != nil {
		return ir.Value{}, err
	}
	return v.Emit.BitCast(raw, ir.TypeF32)
}

// SetF writes an F32 result into general-purpose register n.
func (v *TranslatorVisitor) SetF(n uint32, val ir.Value) error {
	raw, err := v.Emit.BitCast(val, ir.TypeU32)
	if err != nil {
		return err
	}
	return v.SetX(n, raw)
}

// DecodedInstruction is the pre-decoded shape a handler operates on: the
// mnemonic has already been identified, and the three register fields
// cover every representative handler below. A full decoder would instead
// carry the raw 64-bit/128-bit instruction word and its own field masks.
type DecodedInstruction struct {
	Mnemonic   string
	Dest       uint32
	Src1, Src2 uint32
	Target     *ir.Block
}

// handlers is keyed by the mnemonic a decoder has already identified.
// Decoding opcode words from a raw bitmask is out of scope here — only
// the interface to the core IR needs to be defined.
var handlers = map[string]func(*TranslatorVisitor, DecodedInstruction) error{
	"IADD3": func(v *TranslatorVisitor, d DecodedInstruction) error {
		a, err := v.X(d.Src1)
		if err != nil {
			return err
		}
		b, err := v.X(d.Src2)
		if err != nil {
			return err
		}
		sum, err := v.Emit.IAdd(a, b)
		if err != nil {
			return err
		}
		return v.SetX(d.Dest, sum)
	},
	"FADD": func(v *TranslatorVisitor, d DecodedInstruction) error {
		a, err := v.F(d.Src1)
		if err != nil {
			return err
		}
		b, err := v.F(d.Src2)
		if err != nil {
			return err
		}
		sum, err := v.Emit.FPAdd(a, b, ir.FpControl{})
		if err != nil {
			return err
		}
		return v.SetF(d.Dest, sum)
	},
	"MOV": func(v *TranslatorVisitor, d DecodedInstruction) error {
		val, err := v.X(d.Src1)
		if err != nil {
			return err
		}
		return v.SetX(d.Dest, val)
	},
	"EXIT": func(v *TranslatorVisitor, d DecodedInstruction) error {
		return v.Emit.Return()
	},
	"BRA": func(v *TranslatorVisitor, d DecodedInstruction) error {
		return v.Emit.Branch(d.Target)
	},
}

// Dispatch runs the handler registered for d's mnemonic.
func (v *TranslatorVisitor) Dispatch(d DecodedInstruction) error {
	h, ok := handlers[d.Mnemonic]
	if !ok {
		return ir.NotImplementedf(ir.OpcodeInvalid, "frontend: unhandled mnemonic %q", d.Mnemonic)
	}
	return h(v, d)
}
