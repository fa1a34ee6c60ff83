package ir

// opcodeNames backs Opcode.String() as a plain map literal; opcodeEnd has
// no entry and prints in the numeric fallback form.
var opcodeNames = map[Opcode]string{
	OpcodeInvalid:           "Invalid",
	OpcodeInvalidated:       "Invalidated",
	OpcodePhi:               "Phi",
	OpcodeBranch:            "Branch",
	OpcodeBranchConditional: "BranchConditional",
	OpcodeLoopMerge:         "LoopMerge",
	OpcodeSelectionMerge:    "SelectionMerge",
	OpcodeReturn:            "Return",

	OpcodeGetRegister:               "GetRegister",
	OpcodeSetRegister:               "SetRegister",
	OpcodeGetPred:                   "GetPred",
	OpcodeSetPred:                   "SetPred",
	OpcodeGetZFlag:                  "GetZFlag",
	OpcodeSetZFlag:                  "SetZFlag",
	OpcodeGetSFlag:                  "GetSFlag",
	OpcodeSetSFlag:                  "SetSFlag",
	OpcodeGetCFlag:                  "GetCFlag",
	OpcodeSetCFlag:                  "SetCFlag",
	OpcodeGetOFlag:                  "GetOFlag",
	OpcodeSetOFlag:                  "SetOFlag",
	OpcodeGetGotoVariable:           "GetGotoVariable",
	OpcodeSetGotoVariable:           "SetGotoVariable",
	OpcodeGetIndirectBranchVariable: "GetIndirectBranchVariable",
	OpcodeSetIndirectBranchVariable: "SetIndirectBranchVariable",
	OpcodeGetCbuf:                   "GetCbuf",
	OpcodeGetAttribute:              "GetAttribute",
	OpcodeSetAttribute:              "SetAttribute",

	OpcodeUndefU1:  "UndefU1",
	OpcodeUndefU32: "UndefU32",
	OpcodeUndefU64: "UndefU64",
	OpcodeUndefF32: "UndefF32",
	OpcodeUndefF64: "UndefF64",

	OpcodeLoadGlobalU8:    "LoadGlobalU8",
	OpcodeLoadGlobalS8:    "LoadGlobalS8",
	OpcodeLoadGlobalU16:   "LoadGlobalU16",
	OpcodeLoadGlobalS16:   "LoadGlobalS16",
	OpcodeLoadGlobalU32:   "LoadGlobalU32",
	OpcodeLoadGlobalU64:   "LoadGlobalU64",
	OpcodeLoadGlobalU128:  "LoadGlobalU128",
	OpcodeWriteGlobalU8:   "WriteGlobalU8",
	OpcodeWriteGlobalU16:  "WriteGlobalU16",
	OpcodeWriteGlobalU32:  "WriteGlobalU32",
	OpcodeWriteGlobalU64:  "WriteGlobalU64",
	OpcodeWriteGlobalU128: "WriteGlobalU128",

	OpcodeIAdd32:                 "IAdd32",
	OpcodeIAdd64:                 "IAdd64",
	OpcodeISub32:                 "ISub32",
	OpcodeISub64:                 "ISub64",
	OpcodeIMul32:                 "IMul32",
	OpcodeIMul64:                 "IMul64",
	OpcodeINeg32:                 "INeg32",
	OpcodeINeg64:                 "INeg64",
	OpcodeIAbs32:                 "IAbs32",
	OpcodeIAbs64:                 "IAbs64",
	OpcodeShiftLeftLogical32:     "ShiftLeftLogical32",
	OpcodeShiftLeftLogical64:     "ShiftLeftLogical64",
	OpcodeShiftRightLogical32:    "ShiftRightLogical32",
	OpcodeShiftRightLogical64:    "ShiftRightLogical64",
	OpcodeShiftRightArithmetic32: "ShiftRightArithmetic32",
	OpcodeShiftRightArithmetic64: "ShiftRightArithmetic64",
	OpcodeBitwiseAnd32:           "BitwiseAnd32",
	OpcodeBitwiseOr32:            "BitwiseOr32",
	OpcodeBitwiseXor32:           "BitwiseXor32",
	OpcodeBitwiseNot32:           "BitwiseNot32",
	OpcodeBitFieldInsert:         "BitFieldInsert",
	OpcodeBitFieldUExtract:       "BitFieldUExtract",
	OpcodeBitFieldSExtract:       "BitFieldSExtract",
	OpcodeICompareEQ:             "ICompareEQ",
	OpcodeICompareNE:             "ICompareNE",
	OpcodeICompareSLT:            "ICompareSLT",
	OpcodeICompareULT:            "ICompareULT",
	OpcodeICompareSLE:            "ICompareSLE",
	OpcodeICompareULE:            "ICompareULE",
	OpcodeICompareSGT:            "ICompareSGT",
	OpcodeICompareUGT:            "ICompareUGT",
	OpcodeICompareSGE:            "ICompareSGE",
	OpcodeICompareUGE:            "ICompareUGE",

	OpcodeFPAdd16:       "FPAdd16",
	OpcodeFPAdd32:       "FPAdd32",
	OpcodeFPAdd64:       "FPAdd64",
	OpcodeFPMul16:       "FPMul16",
	OpcodeFPMul32:       "FPMul32",
	OpcodeFPMul64:       "FPMul64",
	OpcodeFPFma16:       "FPFma16",
	OpcodeFPFma32:       "FPFma32",
	OpcodeFPFma64:       "FPFma64",
	OpcodeFPAbs16:       "FPAbs16",
	OpcodeFPAbs32:       "FPAbs32",
	OpcodeFPAbs64:       "FPAbs64",
	OpcodeFPNeg16:       "FPNeg16",
	OpcodeFPNeg32:       "FPNeg32",
	OpcodeFPNeg64:       "FPNeg64",
	OpcodeFPSaturate16:  "FPSaturate16",
	OpcodeFPSaturate32:  "FPSaturate32",
	OpcodeFPSaturate64:  "FPSaturate64",
	OpcodeFPRoundEven16: "FPRoundEven16",
	OpcodeFPRoundEven32: "FPRoundEven32",
	OpcodeFPRoundEven64: "FPRoundEven64",
	OpcodeFPFloor16:     "FPFloor16",
	OpcodeFPFloor32:     "FPFloor32",
	OpcodeFPFloor64:     "FPFloor64",
	OpcodeFPCeil16:      "FPCeil16",
	OpcodeFPCeil32:      "FPCeil32",
	OpcodeFPCeil64:      "FPCeil64",
	OpcodeFPTrunc16:     "FPTrunc16",
	OpcodeFPTrunc32:     "FPTrunc32",
	OpcodeFPTrunc64:     "FPTrunc64",
	OpcodeFPRecip32:     "FPRecip32",
	OpcodeFPRecip64:     "FPRecip64",
	OpcodeFPSqrt32:      "FPSqrt32",
	OpcodeFPRSqrt32:     "FPRSqrt32",
	OpcodeFPExp2:        "FPExp2",
	OpcodeFPLog2:        "FPLog2",
	OpcodeFPSin:         "FPSin",
	OpcodeFPCos:         "FPCos",

	OpcodeFPOrdEqual32:              "FPOrdEqual32",
	OpcodeFPOrdNotEqual32:           "FPOrdNotEqual32",
	OpcodeFPOrdLessThan32:           "FPOrdLessThan32",
	OpcodeFPOrdGreaterThan32:        "FPOrdGreaterThan32",
	OpcodeFPOrdLessThanEqual32:      "FPOrdLessThanEqual32",
	OpcodeFPOrdGreaterThanEqual32:   "FPOrdGreaterThanEqual32",
	OpcodeFPUnordEqual32:            "FPUnordEqual32",
	OpcodeFPUnordNotEqual32:         "FPUnordNotEqual32",
	OpcodeFPUnordLessThan32:         "FPUnordLessThan32",
	OpcodeFPUnordGreaterThan32:      "FPUnordGreaterThan32",
	OpcodeFPUnordLessThanEqual32:    "FPUnordLessThanEqual32",
	OpcodeFPUnordGreaterThanEqual32: "FPUnordGreaterThanEqual32",

	OpcodeLogicalAnd: "LogicalAnd",
	OpcodeLogicalOr:  "LogicalOr",
	OpcodeLogicalXor: "LogicalXor",
	OpcodeLogicalNot: "LogicalNot",

	OpcodeCompositeConstruct2: "CompositeConstruct2",
	OpcodeCompositeConstruct3: "CompositeConstruct3",
	OpcodeCompositeConstruct4: "CompositeConstruct4",
	OpcodeCompositeExtract:    "CompositeExtract",

	OpcodeBitCastU32F32: "BitCastU32F32",
	OpcodeBitCastF32U32: "BitCastF32U32",
	OpcodeBitCastU64F64: "BitCastU64F64",
	OpcodeBitCastF64U64: "BitCastF64U64",

	OpcodeConvertS16F16: "ConvertS16F16",
	OpcodeConvertU16F16: "ConvertU16F16",
	OpcodeConvertS16F32: "ConvertS16F32",
	OpcodeConvertU16F32: "ConvertU16F32",
	OpcodeConvertS16F64: "ConvertS16F64",
	OpcodeConvertU16F64: "ConvertU16F64",
	OpcodeConvertS32F32: "ConvertS32F32",
	OpcodeConvertU32F32: "ConvertU32F32",
	OpcodeConvertS32F64: "ConvertS32F64",
	OpcodeConvertU32F64: "ConvertU32F64",
	OpcodeConvertS64F32: "ConvertS64F32",
	OpcodeConvertU64F32: "ConvertU64F32",
	OpcodeConvertS64F64: "ConvertS64F64",
	OpcodeConvertU64F64: "ConvertU64F64",
	OpcodeConvertF32S32: "ConvertF32S32",
	OpcodeConvertF32U32: "ConvertF32U32",
	OpcodeConvertF64S32: "ConvertF64S32",
	OpcodeConvertF64U32: "ConvertF64U32",
	OpcodeConvertF32S64: "ConvertF32S64",
	OpcodeConvertF32U64: "ConvertF32U64",
	OpcodeConvertF64S64: "ConvertF64S64",
	OpcodeConvertF64U64: "ConvertF64U64",
	OpcodeConvertF32F64: "ConvertF32F64",
	OpcodeConvertF64F32: "ConvertF64F32",
	OpcodeConvertU32U64: "ConvertU32U64",
	OpcodeConvertU64U32: "ConvertU64U32",

	OpcodeGetSparseFromOp: "GetSparseFromOp",
}

func init() {
	// Control flow. Phi and Return have a variable number of operands
	// filled in as construction proceeds (phi operands are appended one per
	// predecessor as it's sealed, and a shader can return an arbitrary
	// result tuple); everything else downstream has a fixed shape.
	registerVariadicSignature(OpcodePhi, TypeVoid) // result type mirrors the variable read, set per-instance.
	// Branch targets are carried out-of-band on Instruction.target/target2,
	// not as Value operands, so these signatures describe only the
	// Value-typed part of each shape.
	registerSignature(OpcodeBranch, TypeVoid)
	registerSignature(OpcodeBranchConditional, TypeVoid, TypeU1)
	registerSignature(OpcodeLoopMerge, TypeVoid)
	registerSignature(OpcodeSelectionMerge, TypeVoid)
	registerVariadicSignature(OpcodeReturn, TypeVoid)

	registerSignature(OpcodeGetRegister, TypeU32, TypeReg)
	registerSignature(OpcodeSetRegister, TypeVoid, TypeReg, TypeU32)
	registerSignature(OpcodeGetPred, TypeU1, TypePred)
	registerSignature(OpcodeSetPred, TypeVoid, TypePred, TypeU1)
	registerSignature(OpcodeGetZFlag, TypeU1)
	registerSignature(OpcodeSetZFlag, TypeVoid, TypeU1)
	registerSignature(OpcodeGetSFlag, TypeU1)
	registerSignature(OpcodeSetSFlag, TypeVoid, TypeU1)
	registerSignature(OpcodeGetCFlag, TypeU1)
	registerSignature(OpcodeSetCFlag, TypeVoid, TypeU1)
	registerSignature(OpcodeGetOFlag, TypeU1)
	registerSignature(OpcodeSetOFlag, TypeVoid, TypeU1)
	registerSignature(OpcodeGetGotoVariable, TypeU1, TypeU32)
	registerSignature(OpcodeSetGotoVariable, TypeVoid, TypeU32, TypeU1)
	registerSignature(OpcodeGetIndirectBranchVariable, TypeU32)
	registerSignature(OpcodeSetIndirectBranchVariable, TypeVoid, TypeU32)
	registerSignature(OpcodeGetCbuf, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeGetAttribute, TypeF32, TypeAttribute)
	registerSignature(OpcodeSetAttribute, TypeVoid, TypeAttribute, TypeF32)

	registerSignature(OpcodeUndefU1, TypeU1)
	registerSignature(OpcodeUndefU32, TypeU32)
	registerSignature(OpcodeUndefU64, TypeU64)
	registerSignature(OpcodeUndefF32, TypeF32)
	registerSignature(OpcodeUndefF64, TypeF64)

	registerSignature(OpcodeLoadGlobalU8, TypeU32, TypeU64)
	registerSignature(OpcodeLoadGlobalS8, TypeU32, TypeU64)
	registerSignature(OpcodeLoadGlobalU16, TypeU32, TypeU64)
	registerSignature(OpcodeLoadGlobalS16, TypeU32, TypeU64)
	registerSignature(OpcodeLoadGlobalU32, TypeU32, TypeU64)
	registerSignature(OpcodeLoadGlobalU64, TypeU64, TypeU64)
	registerSignature(OpcodeLoadGlobalU128, TypeU32x4, TypeU64)
	registerSignature(OpcodeWriteGlobalU8, TypeVoid, TypeU64, TypeU32)
	registerSignature(OpcodeWriteGlobalU16, TypeVoid, TypeU64, TypeU32)
	registerSignature(OpcodeWriteGlobalU32, TypeVoid, TypeU64, TypeU32)
	registerSignature(OpcodeWriteGlobalU64, TypeVoid, TypeU64, TypeU64)
	registerSignature(OpcodeWriteGlobalU128, TypeVoid, TypeU64, TypeU32x4)

	registerSignature(OpcodeIAdd32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeIAdd64, TypeU64, TypeU64, TypeU64)
	registerSignature(OpcodeISub32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeISub64, TypeU64, TypeU64, TypeU64)
	registerSignature(OpcodeIMul32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeIMul64, TypeU64, TypeU64, TypeU64)
	registerSignature(OpcodeINeg32, TypeU32, TypeU32)
	registerSignature(OpcodeINeg64, TypeU64, TypeU64)
	registerSignature(OpcodeIAbs32, TypeU32, TypeU32)
	registerSignature(OpcodeIAbs64, TypeU64, TypeU64)
	registerSignature(OpcodeShiftLeftLogical32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeShiftLeftLogical64, TypeU64, TypeU64, TypeU32)
	registerSignature(OpcodeShiftRightLogical32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeShiftRightLogical64, TypeU64, TypeU64, TypeU32)
	registerSignature(OpcodeShiftRightArithmetic32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeShiftRightArithmetic64, TypeU64, TypeU64, TypeU32)
	registerSignature(OpcodeBitwiseAnd32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeBitwiseOr32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeBitwiseXor32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeBitwiseNot32, TypeU32, TypeU32)
	registerSignature(OpcodeBitFieldInsert, TypeU32, TypeU32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeBitFieldUExtract, TypeU32, TypeU32, TypeU32, TypeU32)
	registerSignature(OpcodeBitFieldSExtract, TypeU32, TypeU32, TypeU32, TypeU32)
	for _, op := range []Opcode{
		OpcodeICompareEQ, OpcodeICompareNE, OpcodeICompareSLT, OpcodeICompareULT,
		OpcodeICompareSLE, OpcodeICompareULE, OpcodeICompareSGT, OpcodeICompareUGT,
		OpcodeICompareSGE, OpcodeICompareUGE,
	} {
		registerSignature(op, TypeU1, TypeU32, TypeU32)
	}

	type fpFamily struct {
		op16, op32, op64 Opcode
		binary           bool
	}
	binaryFamilies := []fpFamily{
		{OpcodeFPAdd16, OpcodeFPAdd32, OpcodeFPAdd64, true},
		{OpcodeFPMul16, OpcodeFPMul32, OpcodeFPMul64, true},
	}
	for _, f := range binaryFamilies {
		registerSignature(f.op16, TypeF16, TypeF16, TypeF16)
		registerSignature(f.op32, TypeF32, TypeF32, TypeF32)
		registerSignature(f.op64, TypeF64, TypeF64, TypeF64)
	}
	registerSignature(OpcodeFPFma16, TypeF16, TypeF16, TypeF16, TypeF16)
	registerSignature(OpcodeFPFma32, TypeF32, TypeF32, TypeF32, TypeF32)
	registerSignature(OpcodeFPFma64, TypeF64, TypeF64, TypeF64, TypeF64)

	unaryFamilies := []fpFamily{
		{OpcodeFPAbs16, OpcodeFPAbs32, OpcodeFPAbs64, false},
		{OpcodeFPNeg16, OpcodeFPNeg32, OpcodeFPNeg64, false},
		{OpcodeFPSaturate16, OpcodeFPSaturate32, OpcodeFPSaturate64, false},
		{OpcodeFPRoundEven16, OpcodeFPRoundEven32, OpcodeFPRoundEven64, false},
		{OpcodeFPFloor16, OpcodeFPFloor32, OpcodeFPFloor64, false},
		{OpcodeFPCeil16, OpcodeFPCeil32, OpcodeFPCeil64, false},
		{OpcodeFPTrunc16, OpcodeFPTrunc32, OpcodeFPTrunc64, false},
	}
	for _, f := range unaryFamilies {
		registerSignature(f.op16, TypeF16, TypeF16)
		registerSignature(f.op32, TypeF32, TypeF32)
		registerSignature(f.op64, TypeF64, TypeF64)
	}
	registerSignature(OpcodeFPRecip32, TypeF32, TypeF32)
	registerSignature(OpcodeFPRecip64, TypeF64, TypeF64)
	registerSignature(OpcodeFPSqrt32, TypeF32, TypeF32)
	registerSignature(OpcodeFPRSqrt32, TypeF32, TypeF32)
	registerSignature(OpcodeFPExp2, TypeF32, TypeF32)
	registerSignature(OpcodeFPLog2, TypeF32, TypeF32)
	registerSignature(OpcodeFPSin, TypeF32, TypeF32)
	registerSignature(OpcodeFPCos, TypeF32, TypeF32)

	for _, op := range []Opcode{
		OpcodeFPOrdEqual32, OpcodeFPOrdNotEqual32, OpcodeFPOrdLessThan32, OpcodeFPOrdGreaterThan32,
		OpcodeFPOrdLessThanEqual32, OpcodeFPOrdGreaterThanEqual32,
		OpcodeFPUnordEqual32, OpcodeFPUnordNotEqual32, OpcodeFPUnordLessThan32, OpcodeFPUnordGreaterThan32,
		OpcodeFPUnordLessThanEqual32, OpcodeFPUnordGreaterThanEqual32,
	} {
		registerSignature(op, TypeU1, TypeF32, TypeF32)
	}

	registerSignature(OpcodeLogicalAnd, TypeU1, TypeU1, TypeU1)
	registerSignature(OpcodeLogicalOr, TypeU1, TypeU1, TypeU1)
	registerSignature(OpcodeLogicalXor, TypeU1, TypeU1, TypeU1)
	registerSignature(OpcodeLogicalNot, TypeU1, TypeU1)

	registerVariadicSignature(OpcodeCompositeConstruct2, TypeVoid)
	registerVariadicSignature(OpcodeCompositeConstruct3, TypeVoid)
	registerVariadicSignature(OpcodeCompositeConstruct4, TypeVoid)
	registerSignature(OpcodeCompositeExtract, TypeVoid, TypeVoid, TypeU32) // result depends on the vector operand; checked in emitter.

	registerSignature(OpcodeBitCastU32F32, TypeU32, TypeF32)
	registerSignature(OpcodeBitCastF32U32, TypeF32, TypeU32)
	registerSignature(OpcodeBitCastU64F64, TypeU64, TypeF64)
	registerSignature(OpcodeBitCastF64U64, TypeF64, TypeU64)

	registerSignature(OpcodeConvertS16F16, TypeU16, TypeF16)
	registerSignature(OpcodeConvertU16F16, TypeU16, TypeF16)
	registerSignature(OpcodeConvertS16F32, TypeU16, TypeF32)
	registerSignature(OpcodeConvertU16F32, TypeU16, TypeF32)
	registerSignature(OpcodeConvertS16F64, TypeU16, TypeF64)
	registerSignature(OpcodeConvertU16F64, TypeU16, TypeF64)
	registerSignature(OpcodeConvertS32F32, TypeU32, TypeF32)
	registerSignature(OpcodeConvertU32F32, TypeU32, TypeF32)
	registerSignature(OpcodeConvertS32F64, TypeU32, TypeF64)
	registerSignature(OpcodeConvertU32F64, TypeU32, TypeF64)
	registerSignature(OpcodeConvertS64F32, TypeU64, TypeF32)
	registerSignature(OpcodeConvertU64F32, TypeU64, TypeF32)
	registerSignature(OpcodeConvertS64F64, TypeU64, TypeF64)
	registerSignature(OpcodeConvertU64F64, TypeU64, TypeF64)
	registerSignature(OpcodeConvertF32S32, TypeF32, TypeU32)
	registerSignature(OpcodeConvertF32U32, TypeF32, TypeU32)
	registerSignature(OpcodeConvertF64S32, TypeF64, TypeU32)
	registerSignature(OpcodeConvertF64U32, TypeF64, TypeU32)
	registerSignature(OpcodeConvertF32S64, TypeF32, TypeU64)
	registerSignature(OpcodeConvertF32U64, TypeF32, TypeU64)
	registerSignature(OpcodeConvertF64S64, TypeF64, TypeU64)
	registerSignature(OpcodeConvertF64U64, TypeF64, TypeU64)
	registerSignature(OpcodeConvertF32F64, TypeF32, TypeF64)
	registerSignature(OpcodeConvertF64F32, TypeF64, TypeF32)
	registerSignature(OpcodeConvertU32U64, TypeU32, TypeU64)
	registerSignature(OpcodeConvertU64U32, TypeU64, TypeU32)

	registerSignature(OpcodeGetSparseFromOp, TypeU1)
}
