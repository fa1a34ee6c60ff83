package ir

import "fmt"

// Opcode is a closed enumeration partitioned into families: control flow,
// virtual-variable access, memory, arithmetic (by type and width),
// composites, bit-casts, conversions, phi/undef and pseudo-ops. The full
// hardware-facing recompiler carries roughly 300 opcodes (atomics, image
// samples, interpolation, ...); this core implements each named family with
// enough members to exercise every emitter path and every SSA-construction
// code path.
type Opcode uint16

const (
	OpcodeInvalid Opcode = iota

	// --- control flow ---
	OpcodePhi
	OpcodeBranch
	OpcodeBranchConditional
	OpcodeLoopMerge
	OpcodeSelectionMerge
	OpcodeReturn

	// --- virtual variable access (lowered away by SSA construction) ---
	OpcodeGetRegister
	OpcodeSetRegister
	OpcodeGetPred
	OpcodeSetPred
	OpcodeGetZFlag
	OpcodeSetZFlag
	OpcodeGetSFlag
	OpcodeSetSFlag
	OpcodeGetCFlag
	OpcodeSetCFlag
	OpcodeGetOFlag
	OpcodeSetOFlag
	OpcodeGetGotoVariable
	OpcodeSetGotoVariable
	OpcodeGetIndirectBranchVariable
	OpcodeSetIndirectBranchVariable
	OpcodeGetCbuf
	OpcodeGetAttribute
	OpcodeSetAttribute

	// --- undef, produced by SSA construction where no definition reaches a read ---
	OpcodeUndefU1
	OpcodeUndefU32
	OpcodeUndefU64
	OpcodeUndefF32
	OpcodeUndefF64

	// --- global memory ---
	OpcodeLoadGlobalU8
	OpcodeLoadGlobalS8
	OpcodeLoadGlobalU16
	OpcodeLoadGlobalS16
	OpcodeLoadGlobalU32
	OpcodeLoadGlobalU64
	OpcodeLoadGlobalU128
	OpcodeWriteGlobalU8
	OpcodeWriteGlobalU16
	OpcodeWriteGlobalU32
	OpcodeWriteGlobalU64
	OpcodeWriteGlobalU128

	// --- integer arithmetic ---
	OpcodeIAdd32
	OpcodeIAdd64
	OpcodeISub32
	OpcodeISub64
	OpcodeIMul32
	OpcodeIMul64
	OpcodeINeg32
	OpcodeINeg64
	OpcodeIAbs32
	OpcodeIAbs64
	OpcodeShiftLeftLogical32
	OpcodeShiftLeftLogical64
	OpcodeShiftRightLogical32
	OpcodeShiftRightLogical64
	OpcodeShiftRightArithmetic32
	OpcodeShiftRightArithmetic64
	OpcodeBitwiseAnd32
	OpcodeBitwiseOr32
	OpcodeBitwiseXor32
	OpcodeBitwiseNot32
	OpcodeBitFieldInsert
	OpcodeBitFieldUExtract
	OpcodeBitFieldSExtract
	OpcodeICompareEQ
	OpcodeICompareNE
	OpcodeICompareSLT
	OpcodeICompareULT
	OpcodeICompareSLE
	OpcodeICompareULE
	OpcodeICompareSGT
	OpcodeICompareUGT
	OpcodeICompareSGE
	OpcodeICompareUGE

	// --- floating point arithmetic (16/32/64) ---
	OpcodeFPAdd16
	OpcodeFPAdd32
	OpcodeFPAdd64
	OpcodeFPMul16
	OpcodeFPMul32
	OpcodeFPMul64
	OpcodeFPFma16
	OpcodeFPFma32
	OpcodeFPFma64
	OpcodeFPAbs16
	OpcodeFPAbs32
	OpcodeFPAbs64
	OpcodeFPNeg16
	OpcodeFPNeg32
	OpcodeFPNeg64
	OpcodeFPSaturate16
	OpcodeFPSaturate32
	OpcodeFPSaturate64
	OpcodeFPRoundEven16
	OpcodeFPRoundEven32
	OpcodeFPRoundEven64
	OpcodeFPFloor16
	OpcodeFPFloor32
	OpcodeFPFloor64
	OpcodeFPCeil16
	OpcodeFPCeil32
	OpcodeFPCeil64
	OpcodeFPTrunc16
	OpcodeFPTrunc32
	OpcodeFPTrunc64
	OpcodeFPRecip32
	OpcodeFPRecip64
	OpcodeFPSqrt32
	OpcodeFPRSqrt32
	OpcodeFPExp2
	OpcodeFPLog2
	OpcodeFPSin
	OpcodeFPCos

	// --- floating point comparisons, ordered and unordered ---
	OpcodeFPOrdEqual32
	OpcodeFPOrdNotEqual32
	OpcodeFPOrdLessThan32
	OpcodeFPOrdGreaterThan32
	OpcodeFPOrdLessThanEqual32
	OpcodeFPOrdGreaterThanEqual32
	OpcodeFPUnordEqual32
	OpcodeFPUnordNotEqual32
	OpcodeFPUnordLessThan32
	OpcodeFPUnordGreaterThan32
	OpcodeFPUnordLessThanEqual32
	OpcodeFPUnordGreaterThanEqual32

	// --- logical (predicate) ops ---
	OpcodeLogicalAnd
	OpcodeLogicalOr
	OpcodeLogicalXor
	OpcodeLogicalNot

	// --- composites ---
	OpcodeCompositeConstruct2
	OpcodeCompositeConstruct3
	OpcodeCompositeConstruct4
	OpcodeCompositeExtract

	// --- bit-casts (equal width, integer <-> float) ---
	OpcodeBitCastU32F32
	OpcodeBitCastF32U32
	OpcodeBitCastU64F64
	OpcodeBitCastF64U64

	// --- conversions ---
	OpcodeConvertS16F16
	OpcodeConvertU16F16
	OpcodeConvertS16F32
	OpcodeConvertU16F32
	OpcodeConvertS16F64
	OpcodeConvertU16F64
	OpcodeConvertS32F32
	OpcodeConvertU32F32
	OpcodeConvertS32F64
	OpcodeConvertU32F64
	OpcodeConvertS64F32
	OpcodeConvertU64F32
	OpcodeConvertS64F64
	OpcodeConvertU64F64
	OpcodeConvertF32S32
	OpcodeConvertF32U32
	OpcodeConvertF64S32
	OpcodeConvertF64U32
	OpcodeConvertF32S64
	OpcodeConvertF32U64
	OpcodeConvertF64S64
	OpcodeConvertF64U64
	OpcodeConvertF32F64
	OpcodeConvertF64F32
	OpcodeConvertU32U64
	OpcodeConvertU64U32

	// --- pseudo-ops: secondary consumers attached to a parent instruction ---
	OpcodeGetSparseFromOp

	// --- housekeeping, never a signature lookup target directly ---
	OpcodeInvalidated

	opcodeEnd
)

// signature describes an opcode's static shape: its result type and the
// types of its fixed operands. Variadic is set for opcodes whose operand
// count is determined at emit time (Phi, Return, CompositeConstruct*).
type signature struct {
	result   Type
	operands []Type
	variadic bool
}

// signatures is populated in opcode_table.go's init.
var signatures = make(map[Opcode]signature, opcodeEnd)

func registerSignature(op Opcode, result Type, operands ...Type) {
	signatures[op] = signature{result: result, operands: operands}
}

func registerVariadicSignature(op Opcode, result Type) {
	signatures[op] = signature{result: result, variadic: true}
}

// SignatureOf returns the static (result, operand-types) shape of op.
// ok is false for unknown opcodes (Invalid, or an opcode never registered).
func SignatureOf(op Opcode) (result Type, operands []Type, variadic bool, ok bool) {
	s, ok := signatures[op]
	return s.result, s.operands, s.variadic, ok
}

// String implements fmt.Stringer with the family-prefixed names used above;
// unregistered/unknown values fall back to a numeric form.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", uint16(o))
}
