package ir

import "go.uber.org/zap"

// IREmitter presents a typed, ergonomic surface to frontend decoders while
// hiding arena mechanics. Each emit method either appends a
// fixed-shape instruction or picks the concrete opcode from its operands'
// type tags, dispatching e.g. FPAdd to FPAdd16/32/64 and failing with
// InvalidArgument on mixed widths.
type IREmitter struct {
	arena *Arena
	block *Block
	log   *zap.SugaredLogger
}

// NewIREmitter returns an emitter that inserts into block using arena.
// log may be nil; a nil logger silently drops the NotImplemented-as-warning
// path instead of emitting it.
func NewIREmitter(arena *Arena, block *Block, log *zap.SugaredLogger) *IREmitter {
	return &IREmitter{arena: arena, block: block, log: log}
}

// SetBlock redirects subsequent emits to block — used by a translator
// driving multiple blocks with a single emitter instance.
func (e *IREmitter) SetBlock(block *Block) { e.block = block }

// Block returns the block this emitter currently inserts into.
func (e *IREmitter) Block() *Block { return e.block }

func (e *IREmitter) emit(op Opcode, flags interface{}, operands ...Value) (Value, error) {
	inst, err := e.arena.insert(e.block, positionEnd, op, flags, operands)
	if err != nil {
		return Value{}, err
	}
	return Value{inst: inst}, nil
}

func (e *IREmitter) emitVoid(op Opcode, flags interface{}, operands ...Value) error {
	_, err := e.emit(op, flags, operands...)
	return err
}

func (e *IREmitter) warnNotImplemented(op Opcode, what string) {
	if e.log != nil {
		e.log.Warnw("not implemented", "opcode", op.String(), "detail", what)
	}
}

// --- constants ---

func (e *IREmitter) Imm1(v bool) Value       { return ImmU1(v) }
func (e *IREmitter) Imm8(v uint8) Value       { return ImmU8(v) }
func (e *IREmitter) Imm16(v uint16) Value     { return ImmU16(v) }
func (e *IREmitter) Imm32U(v uint32) Value    { return ImmU32(v) }
func (e *IREmitter) Imm32S(v int32) Value     { return ImmS32(v) }
func (e *IREmitter) Imm32F(v float32) Value   { return ImmF32(v) }
func (e *IREmitter) Imm64U(v uint64) Value    { return ImmU64(v) }
func (e *IREmitter) Imm64F(v float64) Value   { return ImmF64(v) }

// --- control flow ---

// Branch emits an unconditional jump to label and patches both the
// current block's terminator/successor and label's predecessor list.
func (e *IREmitter) Branch(label *Block) error {
	label.AddImmediatePredecessor(e.block)
	inst, err := e.arena.insert(e.block, positionEnd, OpcodeBranch, nil, nil)
	if err != nil {
		return err
	}
	inst.target = label
	return nil
}

// BranchConditional emits a two-way branch and patches successors/preds
// for both targets.
func (e *IREmitter) BranchConditional(cond Value, trueLabel, falseLabel *Block) error {
	if cond.Type() != TypeU1 {
		return InvalidArgumentTypef(cond.Type(), "BranchConditional: condition must be U1")
	}
	trueLabel.AddImmediatePredecessor(e.block)
	falseLabel.AddImmediatePredecessor(e.block)
	inst, err := e.arena.insert(e.block, positionEnd, OpcodeBranchConditional, nil, []Value{cond})
	if err != nil {
		return err
	}
	inst.target, inst.target2 = trueLabel, falseLabel
	return nil
}

// LoopMerge records the merge block and continue target of a structured loop.
func (e *IREmitter) LoopMerge(merge, continueTarget *Block) error {
	inst, err := e.arena.insert(e.block, positionEnd, OpcodeLoopMerge, nil, nil)
	if err != nil {
		return err
	}
	inst.target, inst.target2 = merge, continueTarget
	return nil
}

// SelectionMerge records the merge block of a structured if/switch.
func (e *IREmitter) SelectionMerge(merge *Block) error {
	inst, err := e.arena.insert(e.block, positionEnd, OpcodeSelectionMerge, nil, nil)
	if err != nil {
		return err
	}
	inst.target = merge
	return nil
}

// Return emits the function-return terminator with an arbitrary result tuple.
func (e *IREmitter) Return(results ...Value) error {
	_, err := e.arena.insert(e.block, positionEnd, OpcodeReturn, nil, results)
	return err
}

// --- virtual variable access ---

func (e *IREmitter) GetReg(reg Reg) (Value, error)  { return e.emit(OpcodeGetRegister, nil, ImmReg(reg)) }
func (e *IREmitter) SetReg(reg Reg, v Value) error  { return e.emitVoid(OpcodeSetRegister, nil, ImmReg(reg), v) }

// GetPred reads predicate pred, optionally negating the result via
// LogicalNot.
func (e *IREmitter) GetPred(pred Pred, negated bool) (Value, error) {
	v, err := e.emit(OpcodeGetPred, nil, ImmPred(pred))
	if err != nil || !negated {
		return v, err
	}
	return e.emit(OpcodeLogicalNot, nil, v)
}

func (e *IREmitter) SetPred(pred Pred, v Value) error { return e.emitVoid(OpcodeSetPred, nil, ImmPred(pred), v) }

func (e *IREmitter) GetZFlag() (Value, error) { return e.emit(OpcodeGetZFlag, nil) }
func (e *IREmitter) SetZFlag(v Value) error   { return e.emitVoid(OpcodeSetZFlag, nil, v) }
func (e *IREmitter) GetSFlag() (Value, error) { return e.emit(OpcodeGetSFlag, nil) }
func (e *IREmitter) SetSFlag(v Value) error   { return e.emitVoid(OpcodeSetSFlag, nil, v) }
func (e *IREmitter) GetCFlag() (Value, error) { return e.emit(OpcodeGetCFlag, nil) }
func (e *IREmitter) SetCFlag(v Value) error   { return e.emitVoid(OpcodeSetCFlag, nil, v) }
func (e *IREmitter) GetOFlag() (Value, error) { return e.emit(OpcodeGetOFlag, nil) }
func (e *IREmitter) SetOFlag(v Value) error   { return e.emitVoid(OpcodeSetOFlag, nil, v) }

func (e *IREmitter) GetGotoVariable(id uint32) (Value, error) {
	return e.emit(OpcodeGetGotoVariable, nil, ImmU32(id))
}
func (e *IREmitter) SetGotoVariable(id uint32, v Value) error {
	return e.emitVoid(OpcodeSetGotoVariable, nil, ImmU32(id), v)
}
func (e *IREmitter) GetIndirectBranchVariable() (Value, error) {
	return e.emit(OpcodeGetIndirectBranchVariable, nil)
}
func (e *IREmitter) SetIndirectBranchVariable(v Value) error {
	return e.emitVoid(OpcodeSetIndirectBranchVariable, nil, v)
}

func (e *IREmitter) GetCbuf(binding, byteOffset Value) (Value, error) {
	return e.emit(OpcodeGetCbuf, nil, binding, byteOffset)
}
func (e *IREmitter) GetAttribute(attr Attribute) (Value, error) {
	return e.emit(OpcodeGetAttribute, nil, ImmAttribute(attr))
}
func (e *IREmitter) SetAttribute(attr Attribute, v Value) error {
	return e.emitVoid(OpcodeSetAttribute, nil, ImmAttribute(attr), v)
}

// --- undefs, for reads that no definition reaches ---

// Undef emits an undefined value of the given type, used when a phi's
// operands collapse to nothing live (an unreachable predecessor, or an
// entry-block read of a virtual variable with no prior write). Unlike
// every other emit method, this does not insert at the block's tail: it
// goes through InsertUndef so it lands before the block's terminator
// rather than after it.
func (e *IREmitter) Undef(t Type) (Value, error) {
	return InsertUndef(e.arena, e.block, t)
}

// --- global memory ---

var globalLoadOpcodeByWidth = map[int]Opcode{8: OpcodeLoadGlobalU8, 16: OpcodeLoadGlobalU16, 32: OpcodeLoadGlobalU32, 64: OpcodeLoadGlobalU64}
var globalLoadSignedOpcodeByWidth = map[int]Opcode{8: OpcodeLoadGlobalS8, 16: OpcodeLoadGlobalS16}
var globalStoreOpcodeByWidth = map[int]Opcode{8: OpcodeWriteGlobalU8, 16: OpcodeWriteGlobalU16, 32: OpcodeWriteGlobalU32, 64: OpcodeWriteGlobalU64}

// LoadGlobal emits a typed load at the given width; signed selects the
// sign-extending narrow form for 8/16-bit widths. Supported widths are
// 8/16/32/64/128, with signed/unsigned narrow forms below 32 bits.
func (e *IREmitter) LoadGlobal(address Value, width int, signed bool) (Value, error) {
	if address.Type() != TypeU64 {
		return Value{}, InvalidArgumentTypef(address.Type(), "LoadGlobal: address must be U64")
	}
	if width == 128 {
		return e.emit(OpcodeLoadGlobalU128, nil, address)
	}
	if signed {
		if op, ok := globalLoadSignedOpcodeByWidth[width]; ok {
			return e.emit(op, nil, address)
		}
		return Value{}, InvalidArgumentf("LoadGlobal: no signed narrow form for width %d", width)
	}
	op, ok := globalLoadOpcodeByWidth[width]
	if !ok {
		return Value{}, InvalidArgumentf("LoadGlobal: unsupported width %d", width)
	}
	return e.emit(op, nil, address)
}

// WriteGlobal emits a typed store at the given width.
func (e *IREmitter) WriteGlobal(address, value Value, width int) error {
	if address.Type() != TypeU64 {
		return InvalidArgumentTypef(address.Type(), "WriteGlobal: address must be U64")
	}
	if width == 128 {
		return e.emitVoid(OpcodeWriteGlobalU128, nil, address, value)
	}
	op, ok := globalStoreOpcodeByWidth[width]
	if !ok {
		return InvalidArgumentf("WriteGlobal: unsupported width %d", width)
	}
	return e.emitVoid(op, nil, address, value)
}

// --- integer arithmetic, dispatched on operand width ---

func (e *IREmitter) dispatchIntBinary(a, b Value, op32, op64 Opcode) (Value, error) {
	if a.Type() != b.Type() {
		return Value{}, InvalidArgumentf("%s: mismatched operand types %s and %s", op32, a.Type(), b.Type())
	}
	switch a.Type() {
	case TypeU32:
		return e.emit(op32, nil, a, b)
	case TypeU64:
		return e.emit(op64, nil, a, b)
	default:
		return Value{}, InvalidArgumentTypef(a.Type(), "%s: unsupported integer width", op32)
	}
}

func (e *IREmitter) dispatchIntUnary(a Value, op32, op64 Opcode) (Value, error) {
	switch a.Type() {
	case TypeU32:
		return e.emit(op32, nil, a)
	case TypeU64:
		return e.emit(op64, nil, a)
	default:
		return Value{}, InvalidArgumentTypef(a.Type(), "%s: unsupported integer width", op32)
	}
}

func (e *IREmitter) IAdd(a, b Value) (Value, error) { return e.dispatchIntBinary(a, b, OpcodeIAdd32, OpcodeIAdd64) }
func (e *IREmitter) ISub(a, b Value) (Value, error) { return e.dispatchIntBinary(a, b, OpcodeISub32, OpcodeISub64) }
func (e *IREmitter) IMul(a, b Value) (Value, error) { return e.dispatchIntBinary(a, b, OpcodeIMul32, OpcodeIMul64) }
func (e *IREmitter) INeg(a Value) (Value, error)    { return e.dispatchIntUnary(a, OpcodeINeg32, OpcodeINeg64) }
func (e *IREmitter) IAbs(a Value) (Value, error)    { return e.dispatchIntUnary(a, OpcodeIAbs32, OpcodeIAbs64) }

func (e *IREmitter) shiftOpcode(a Value, op32, op64 Opcode) (Opcode, error) {
	switch a.Type() {
	case TypeU32:
		return op32, nil
	case TypeU64:
		return op64, nil
	default:
		return 0, InvalidArgumentTypef(a.Type(), "shift: unsupported integer width")
	}
}

func (e *IREmitter) ShiftLeftLogical(a, shift Value) (Value, error) {
	op, err := e.shiftOpcode(a, OpcodeShiftLeftLogical32, OpcodeShiftLeftLogical64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, nil, a, shift)
}

func (e *IREmitter) ShiftRightLogical(a, shift Value) (Value, error) {
	op, err := e.shiftOpcode(a, OpcodeShiftRightLogical32, OpcodeShiftRightLogical64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, nil, a, shift)
}

func (e *IREmitter) ShiftRightArithmetic(a, shift Value) (Value, error) {
	op, err := e.shiftOpcode(a, OpcodeShiftRightArithmetic32, OpcodeShiftRightArithmetic64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, nil, a, shift)
}

func (e *IREmitter) BitwiseAnd(a, b Value) (Value, error) { return e.emit(OpcodeBitwiseAnd32, nil, a, b) }
func (e *IREmitter) BitwiseOr(a, b Value) (Value, error)  { return e.emit(OpcodeBitwiseOr32, nil, a, b) }
func (e *IREmitter) BitwiseXor(a, b Value) (Value, error) { return e.emit(OpcodeBitwiseXor32, nil, a, b) }
func (e *IREmitter) BitwiseNot(a Value) (Value, error)    { return e.emit(OpcodeBitwiseNot32, nil, a) }

// BitFieldInsert inserts count bits of insert into base at offset.
func (e *IREmitter) BitFieldInsert(base, insert, offset, count Value) (Value, error) {
	return e.emit(OpcodeBitFieldInsert, nil, base, insert, offset, count)
}

// BitFieldExtract extracts count bits from base at offset, sign-extending
// if signed is set.
func (e *IREmitter) BitFieldExtract(base, offset, count Value, signed bool) (Value, error) {
	if signed {
		return e.emit(OpcodeBitFieldSExtract, nil, base, offset, count)
	}
	return e.emit(OpcodeBitFieldUExtract, nil, base, offset, count)
}

var intCompareOpcodes = map[string]Opcode{
	"eq":  OpcodeICompareEQ,
	"ne":  OpcodeICompareNE,
	"slt": OpcodeICompareSLT,
	"ult": OpcodeICompareULT,
	"sle": OpcodeICompareSLE,
	"ule": OpcodeICompareULE,
	"sgt": OpcodeICompareSGT,
	"ugt": OpcodeICompareUGT,
	"sge": OpcodeICompareSGE,
	"uge": OpcodeICompareUGE,
}

// ICompare emits an integer comparison; cond is one of
// eq/ne/slt/ult/sle/ule/sgt/ugt/sge/uge.
func (e *IREmitter) ICompare(cond string, a, b Value) (Value, error) {
	op, ok := intCompareOpcodes[cond]
	if !ok {
		return Value{}, InvalidArgumentf("ICompare: unknown condition %q", cond)
	}
	return e.emit(op, nil, a, b)
}

// --- floating point arithmetic, dispatched on operand width, threading FpControl ---

func fpBinaryOpcode(typ Type, op16, op32, op64 Opcode) (Opcode, error) {
	switch typ {
	case TypeF16:
		return op16, nil
	case TypeF32:
		return op32, nil
	case TypeF64:
		return op64, nil
	default:
		return 0, InvalidArgumentTypef(typ, "floating point op: unsupported type")
	}
}

// FPAdd dispatches to FPAdd16/32/64 based on operand type, and fails with
// InvalidArgument on mixed widths.
func (e *IREmitter) FPAdd(a, b Value, ctrl FpControl) (Value, error) {
	if a.Type() != b.Type() {
		return Value{}, InvalidArgumentf("FPAdd: mismatched operand types %s and %s", a.Type(), b.Type())
	}
	op, err := fpBinaryOpcode(a.Type(), OpcodeFPAdd16, OpcodeFPAdd32, OpcodeFPAdd64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, ctrl, a, b)
}

func (e *IREmitter) FPMul(a, b Value, ctrl FpControl) (Value, error) {
	if a.Type() != b.Type() {
		return Value{}, InvalidArgumentf("FPMul: mismatched operand types %s and %s", a.Type(), b.Type())
	}
	op, err := fpBinaryOpcode(a.Type(), OpcodeFPMul16, OpcodeFPMul32, OpcodeFPMul64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, ctrl, a, b)
}

func (e *IREmitter) FPFma(a, b, c Value, ctrl FpControl) (Value, error) {
	if a.Type() != b.Type() || a.Type() != c.Type() {
		return Value{}, InvalidArgumentf("FPFma: mismatched operand types")
	}
	op, err := fpBinaryOpcode(a.Type(), OpcodeFPFma16, OpcodeFPFma32, OpcodeFPFma64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, ctrl, a, b, c)
}

func (e *IREmitter) fpUnary(a Value, ctrl FpControl, op16, op32, op64 Opcode) (Value, error) {
	op, err := fpBinaryOpcode(a.Type(), op16, op32, op64)
	if err != nil {
		return Value{}, err
	}
	return e.emit(op, ctrl, a)
}

func (e *IREmitter) FPAbs(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPAbs16, OpcodeFPAbs32, OpcodeFPAbs64)
}
func (e *IREmitter) FPNeg(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPNeg16, OpcodeFPNeg32, OpcodeFPNeg64)
}
func (e *IREmitter) FPSaturate(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPSaturate16, OpcodeFPSaturate32, OpcodeFPSaturate64)
}
func (e *IREmitter) FPRoundEven(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPRoundEven16, OpcodeFPRoundEven32, OpcodeFPRoundEven64)
}
func (e *IREmitter) FPFloor(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPFloor16, OpcodeFPFloor32, OpcodeFPFloor64)
}
func (e *IREmitter) FPCeil(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPCeil16, OpcodeFPCeil32, OpcodeFPCeil64)
}
func (e *IREmitter) FPTrunc(a Value, ctrl FpControl) (Value, error) {
	return e.fpUnary(a, ctrl, OpcodeFPTrunc16, OpcodeFPTrunc32, OpcodeFPTrunc64)
}

func (e *IREmitter) FPRecip(a Value, ctrl FpControl) (Value, error) {
	switch a.Type() {
	case TypeF32:
		return e.emit(OpcodeFPRecip32, ctrl, a)
	case TypeF64:
		return e.emit(OpcodeFPRecip64, ctrl, a)
	default:
		return Value{}, InvalidArgumentTypef(a.Type(), "FPRecip: unsupported type")
	}
}

func (e *IREmitter) fp32Unary(a Value, ctrl FpControl, op Opcode) (Value, error) {
	if a.Type() != TypeF32 {
		return Value{}, InvalidArgumentTypef(a.Type(), "%s requires F32", op)
	}
	return e.emit(op, ctrl, a)
}

func (e *IREmitter) FPSqrt(a Value, ctrl FpControl) (Value, error)  { return e.fp32Unary(a, ctrl, OpcodeFPSqrt32) }
func (e *IREmitter) FPRSqrt(a Value, ctrl FpControl) (Value, error) { return e.fp32Unary(a, ctrl, OpcodeFPRSqrt32) }
func (e *IREmitter) FPExp2(a Value, ctrl FpControl) (Value, error)  { return e.fp32Unary(a, ctrl, OpcodeFPExp2) }
func (e *IREmitter) FPLog2(a Value, ctrl FpControl) (Value, error)  { return e.fp32Unary(a, ctrl, OpcodeFPLog2) }
func (e *IREmitter) FPSin(a Value, ctrl FpControl) (Value, error)   { return e.fp32Unary(a, ctrl, OpcodeFPSin) }
func (e *IREmitter) FPCos(a Value, ctrl FpControl) (Value, error)   { return e.fp32Unary(a, ctrl, OpcodeFPCos) }

var fpOrderedCompareOpcodes = map[string]Opcode{
	"eq": OpcodeFPOrdEqual32, "ne": OpcodeFPOrdNotEqual32,
	"lt": OpcodeFPOrdLessThan32, "gt": OpcodeFPOrdGreaterThan32,
	"le": OpcodeFPOrdLessThanEqual32, "ge": OpcodeFPOrdGreaterThanEqual32,
}
var fpUnorderedCompareOpcodes = map[string]Opcode{
	"eq": OpcodeFPUnordEqual32, "ne": OpcodeFPUnordNotEqual32,
	"lt": OpcodeFPUnordLessThan32, "gt": OpcodeFPUnordGreaterThan32,
	"le": OpcodeFPUnordLessThanEqual32, "ge": OpcodeFPUnordGreaterThanEqual32,
}

// FPCompare emits an ordered or unordered F32 comparison; cond is one of
// eq/ne/lt/gt/le/ge.
func (e *IREmitter) FPCompare(cond string, a, b Value, ordered bool) (Value, error) {
	table := fpUnorderedCompareOpcodes
	if ordered {
		table = fpOrderedCompareOpcodes
	}
	op, ok := table[cond]
	if !ok {
		return Value{}, InvalidArgumentf("FPCompare: unknown condition %q", cond)
	}
	return e.emit(op, nil, a, b)
}

// --- logical ops over predicates ---

func (e *IREmitter) LogicalAnd(a, b Value) (Value, error) { return e.emit(OpcodeLogicalAnd, nil, a, b) }
func (e *IREmitter) LogicalOr(a, b Value) (Value, error)  { return e.emit(OpcodeLogicalOr, nil, a, b) }
func (e *IREmitter) LogicalXor(a, b Value) (Value, error) { return e.emit(OpcodeLogicalXor, nil, a, b) }
func (e *IREmitter) LogicalNot(a Value) (Value, error)    { return e.emit(OpcodeLogicalNot, nil, a) }

// --- composites ---

// CompositeConstruct builds a 2/3/4-wide vector from same-typed elements.
func (e *IREmitter) CompositeConstruct(elems ...Value) (Value, error) {
	n := len(elems)
	if n < 2 || n > 4 {
		return Value{}, InvalidArgumentf("CompositeConstruct: expected 2-4 elements, got %d", n)
	}
	elemType := elems[0].Type()
	for _, el := range elems[1:] {
		if el.Type() != elemType {
			return Value{}, InvalidArgumentf("CompositeConstruct: mismatched element types %s and %s", elemType, el.Type())
		}
	}
	resultType := VectorOf(elemType, n)
	if resultType == TypeVoid {
		return Value{}, InvalidArgumentTypef(elemType, "CompositeConstruct: element type has no vector form")
	}
	var op Opcode
	switch n {
	case 2:
		op = OpcodeCompositeConstruct2
	case 3:
		op = OpcodeCompositeConstruct3
	default:
		op = OpcodeCompositeConstruct4
	}
	v, err := e.emit(op, nil, elems...)
	if err != nil {
		return Value{}, err
	}
	v.inst.resultType = resultType
	return v, nil
}

// CompositeExtract returns the index-th lane of a vector value, with
// bounds checking against vec's static element count.
func (e *IREmitter) CompositeExtract(vec Value, index uint32) (Value, error) {
	if !vec.Type().IsVector() {
		return Value{}, InvalidArgumentTypef(vec.Type(), "CompositeExtract: operand is not a vector")
	}
	if int(index) >= vec.Type().NumElements() {
		return Value{}, InvalidArgumentf("CompositeExtract: index %d out of bounds for %s", index, vec.Type())
	}
	v, err := e.emit(OpcodeCompositeExtract, nil, vec, ImmU32(index))
	if err != nil {
		return Value{}, err
	}
	v.inst.resultType = vec.Type().ElemType()
	return v, nil
}

// --- bit-casts (equal width only) ---

func (e *IREmitter) BitCast(v Value, to Type) (Value, error) {
	switch {
	case v.Type() == TypeU32 && to == TypeF32:
		return e.emit(OpcodeBitCastF32U32, nil, v)
	case v.Type() == TypeF32 && to == TypeU32:
		return e.emit(OpcodeBitCastU32F32, nil, v)
	case v.Type() == TypeU64 && to == TypeF64:
		return e.emit(OpcodeBitCastF64U64, nil, v)
	case v.Type() == TypeF64 && to == TypeU64:
		return e.emit(OpcodeBitCastU64F64, nil, v)
	default:
		return Value{}, InvalidArgumentf("BitCast: unsupported pair %s -> %s", v.Type(), to)
	}
}

// --- conversions ---

var floatToIntOpcodes = map[[3]interface{}]Opcode{
	{TypeF16, TypeU16, true}:  OpcodeConvertS16F16,
	{TypeF16, TypeU16, false}: OpcodeConvertU16F16,
	{TypeF32, TypeU16, true}:  OpcodeConvertS16F32,
	{TypeF32, TypeU16, false}: OpcodeConvertU16F32,
	{TypeF64, TypeU16, true}:  OpcodeConvertS16F64,
	{TypeF64, TypeU16, false}: OpcodeConvertU16F64,
	{TypeF32, TypeU32, true}:  OpcodeConvertS32F32,
	{TypeF32, TypeU32, false}: OpcodeConvertU32F32,
	{TypeF64, TypeU32, true}:  OpcodeConvertS32F64,
	{TypeF64, TypeU32, false}: OpcodeConvertU32F64,
	{TypeF32, TypeU64, true}:  OpcodeConvertS64F32,
	{TypeF32, TypeU64, false}: OpcodeConvertU64F32,
	{TypeF64, TypeU64, true}:  OpcodeConvertS64F64,
	{TypeF64, TypeU64, false}: OpcodeConvertU64F64,
}

// ConvertFloatToInt converts a float source to a signed/unsigned 16, 32, or
// 64-bit integer. There is no dedicated 8-bit destination; callers needing
// a U8 result truncate the U16 result themselves via a BitFieldExtract.
func (e *IREmitter) ConvertFloatToInt(v Value, destBits int, signed bool) (Value, error) {
	var key [3]interface{}
	switch destBits {
	case 16:
		key = [3]interface{}{v.Type(), TypeU16, signed}
	case 32:
		key = [3]interface{}{v.Type(), TypeU32, signed}
	case 64:
		key = [3]interface{}{v.Type(), TypeU64, signed}
	default:
		return Value{}, InvalidArgumentf("ConvertFloatToInt: unsupported destination bitsize %d", destBits)
	}
	op, ok := floatToIntOpcodes[key]
	if !ok {
		return Value{}, InvalidArgumentTypef(v.Type(), "ConvertFloatToInt: unsupported source type")
	}
	return e.emit(op, nil, v)
}

var intToFloatOpcodes = map[[3]interface{}]Opcode{
	{TypeU32, TypeF32, true}:  OpcodeConvertF32S32,
	{TypeU32, TypeF32, false}: OpcodeConvertF32U32,
	{TypeU32, TypeF64, true}:  OpcodeConvertF64S32,
	{TypeU32, TypeF64, false}: OpcodeConvertF64U32,
	{TypeU64, TypeF32, true}:  OpcodeConvertF32S64,
	{TypeU64, TypeF32, false}: OpcodeConvertF32U64,
	{TypeU64, TypeF64, true}:  OpcodeConvertF64S64,
	{TypeU64, TypeF64, false}: OpcodeConvertF64U64,
}

// ConvertIntToFloat converts a 32/64-bit signed/unsigned integer to the
// requested float destination type.
func (e *IREmitter) ConvertIntToFloat(v Value, dest Type, signed bool) (Value, error) {
	op, ok := intToFloatOpcodes[[3]interface{}{v.Type(), dest, signed}]
	if !ok {
		return Value{}, InvalidArgumentf("ConvertIntToFloat: unsupported pair %s -> %s", v.Type(), dest)
	}
	return e.emit(op, nil, v)
}

// ConvertFloatToFloat converts between F32 and F64.
func (e *IREmitter) ConvertFloatToFloat(v Value, dest Type) (Value, error) {
	switch {
	case v.Type() == TypeF32 && dest == TypeF64:
		return e.emit(OpcodeConvertF32F64, nil, v)
	case v.Type() == TypeF64 && dest == TypeF32:
		return e.emit(OpcodeConvertF64F32, nil, v)
	default:
		return Value{}, InvalidArgumentf("ConvertFloatToFloat: unsupported pair %s -> %s", v.Type(), dest)
	}
}

// ConvertUnsignedWidth widens/narrows between U32 and U64.
func (e *IREmitter) ConvertUnsignedWidth(v Value, dest Type) (Value, error) {
	switch {
	case v.Type() == TypeU32 && dest == TypeU64:
		return e.emit(OpcodeConvertU32U64, nil, v)
	case v.Type() == TypeU64 && dest == TypeU32:
		return e.emit(OpcodeConvertU64U32, nil, v)
	default:
		return Value{}, InvalidArgumentf("ConvertUnsignedWidth: unsupported pair %s -> %s", v.Type(), dest)
	}
}
