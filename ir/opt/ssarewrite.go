// Package opt hosts IR-to-IR passes that run after a function's blocks and
// raw virtual-variable instructions have been built by a frontend.
package opt

import (
	"github.com/EmulationChannel/yuzu/ir"
)

// varKind partitions the virtual variables the SSA construction pass
// tracks: every Get/Set pair the frontend can legally emit before this
// pass runs.
type varKind byte

const (
	varReg varKind = iota
	varPred
	varZFlag
	varSFlag
	varCFlag
	varOFlag
	varGoto
	varIndirectBranch
)

// variable is a flat, comparable key: every field combination that can
// occur is a valid map key with no further normalization needed.
type variable struct {
	kind varKind
	id   uint32
}

// Type returns the IR type a read of this variable produces.
func (v variable) Type() ir.Type {
	switch v.kind {
	case varReg, varIndirectBranch:
		return ir.TypeU32
	default:
		return ir.TypeU1
	}
}

// Stats summarizes what one Run call did to a function, for diagnostics
// and tests.
type Stats struct {
	PhisCreated    int
	PhisElided     int
	UndefsInserted int
}

// frameState names one step of the explicit work-stack state machine that
// replaces the Braun et al. algorithm's natural recursion in readVariable,
// so a long predecessor chain (e.g. a deeply nested loop nest) costs stack
// slots in a slice rather than Go call stack frames.
type frameState byte

const (
	frameStart frameState = iota
	frameSetValue
	framePreparePhiArgument
	framePushPhiArgument
)

type frame struct {
	state     frameState
	v         variable
	block     *ir.Block
	phi       *ir.Instruction
	predIndex int
}

type ssaState struct {
	arena *ir.Arena

	currentDef     map[variable]map[*ir.Block]ir.Value
	sealedBlocks   map[*ir.Block]bool
	incompletePhis map[*ir.Block]map[variable]*ir.Instruction

	stats Stats
}

func newSSAState(arena *ir.Arena) *ssaState {
	return &ssaState{
		arena:          arena,
		currentDef:     make(map[variable]map[*ir.Block]ir.Value),
		sealedBlocks:   make(map[*ir.Block]bool),
		incompletePhis: make(map[*ir.Block]map[variable]*ir.Instruction),
	}
}

func (s *ssaState) writeVariable(v variable, block *ir.Block, value ir.Value) {
	m, ok := s.currentDef[v]
	if !ok {
		m = make(map[*ir.Block]ir.Value)
		s.currentDef[v] = m
	}
	m[block] = value
}

// readVariable resolves the live value of v at the current point of
// block (its latest definition there, else the value flowing in from its
// predecessors), driving the work-stack state machine described above rather than
// calling itself recursively.
func (s *ssaState) readVariable(v variable, block *ir.Block) (ir.Value, error) {
	stack := []frame{{state: frameStart, v: v, block: block}}
	var result ir.Value

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		switch top.state {
		case frameStart:
			if m, ok := s.currentDef[top.v]; ok {
				if val, ok := m[top.block]; ok {
					result = val
					stack = stack[:len(stack)-1]
					continue
				}
			}

			if !s.sealedBlocks[top.block] {
				phi := s.arena.NewPhi(top.block, top.v.Type())
				s.stats.PhisCreated++
				if s.incompletePhis[top.block] == nil {
					s.incompletePhis[top.block] = make(map[variable]*ir.Instruction)
				}
				s.incompletePhis[top.block][top.v] = phi
				result = phi.AsValue()
				s.writeVariable(top.v, top.block, result)
				stack = stack[:len(stack)-1]
				continue
			}

			preds := top.block.ImmediatePredecessors()
			switch len(preds) {
			case 0:
				// Unreachable or the function's entry block: no definition
				// can flow in, so the read yields Undef.
				undef, err := ir.InsertUndef(s.arena, top.block, top.v.Type())
				if err != nil {
					return ir.Value{}, err
				}
				s.stats.UndefsInserted++
				result = undef
				s.writeVariable(top.v, top.block, result)
				stack = stack[:len(stack)-1]
			case 1:
				top.state = frameSetValue
				stack = append(stack, frame{state: frameStart, v: top.v, block: preds[0]})
			default:
				phi := s.arena.NewPhi(top.block, top.v.Type())
				s.stats.PhisCreated++
				// Write the not-yet-complete phi before recursing into
				// predecessors so a cycle through this block reads the
				// phi itself instead of recursing forever.
				s.writeVariable(top.v, top.block, phi.AsValue())
				top.phi = phi
				top.predIndex = 0
				top.state = framePreparePhiArgument
			}

		case frameSetValue:
			s.writeVariable(top.v, top.block, result)
			stack = stack[:len(stack)-1]

		case framePreparePhiArgument:
			preds := top.block.ImmediatePredecessors()
			if top.predIndex >= len(preds) {
				final, err := s.tryRemoveTrivialPhi(top.phi, top.v)
				if err != nil {
					return ir.Value{}, err
				}
				result = final
				s.writeVariable(top.v, top.block, result)
				stack = stack[:len(stack)-1]
				continue
			}
			pred := preds[top.predIndex]
			top.state = framePushPhiArgument
			stack = append(stack, frame{state: frameStart, v: top.v, block: pred})

		case framePushPhiArgument:
			preds := top.block.ImmediatePredecessors()
			pred := preds[top.predIndex]
			ir.AppendPhiOperand(top.phi, pred, result)
			top.predIndex++
			top.state = framePreparePhiArgument
		}
	}

	return result, nil
}

// tryRemoveTrivialPhi collapses phi (and any phi that becomes trivial as a
// consequence) to the single distinct value it merges, or to a fresh Undef
// if it merges nothing live. The propagation to phi's users is driven by
// an explicit worklist. A phi reachable this way may stand for another
// variable (a register copied into another register shares its phi), but
// it always has v's IR type, since every Set* signature fixes the stored
// value's type to that of its variable; so v.Type() is the Undef type
// for all of them.
func (s *ssaState) tryRemoveTrivialPhi(phi *ir.Instruction, v variable) (ir.Value, error) {
	first := phi.AsValue()
	queue := []*ir.Instruction{phi}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Invalid() {
			continue
		}

		var same ir.Value
		trivial := true
		for _, op := range cur.Args() {
			resolved := op.Resolve()
			if resolved.Equal(cur.AsValue()) {
				continue // self-reference, ignore
			}
			if !same.IsEmpty() && !same.Equal(resolved) {
				trivial = false
				break
			}
			same = resolved
		}
		if !trivial {
			continue
		}

		if same.IsEmpty() {
			undef, err := ir.InsertUndef(s.arena, cur.Block(), v.Type())
			if err != nil {
				return ir.Value{}, err
			}
			s.stats.UndefsInserted++
			same = undef
		}

		users := cur.Users()
		ir.ReplaceUsesWith(cur, same)
		if err := ir.Remove(cur); err != nil {
			return ir.Value{}, err
		}
		s.stats.PhisElided++
		if first.Inst() == cur {
			first = same
		}
		// currentDef may still cache the collapsed phi, for any variable and
		// in any block; point those entries at its replacement.
		for _, defs := range s.currentDef {
			for b, val := range defs {
				if val.Inst() == cur {
					defs[b] = same
				}
			}
		}

		for _, u := range users {
			if u != cur && u.IsPhi() {
				queue = append(queue, u)
			}
		}
	}

	return first.Resolve(), nil
}

// sealBlock marks block as having no further predecessors to add and
// resolves every phi that was left incomplete while it was unsealed.
func (s *ssaState) sealBlock(block *ir.Block) error {
	phis := s.incompletePhis[block]
	delete(s.incompletePhis, block)
	s.sealedBlocks[block] = true

	for v, phi := range phis {
		if _, err := s.addPhiOperands(phi, v); err != nil {
			return err
		}
	}
	return nil
}

// addPhiOperands fills phi with one operand per predecessor of its own
// block and immediately tries to collapse it if that makes it trivial.
func (s *ssaState) addPhiOperands(phi *ir.Instruction, v variable) (ir.Value, error) {
	block := phi.Block()
	for _, pred := range block.ImmediatePredecessors() {
		val, err := s.readVariable(v, pred)
		if err != nil {
			return ir.Value{}, err
		}
		ir.AppendPhiOperand(phi, pred, val)
	}
	return s.tryRemoveTrivialPhi(phi, v)
}

var flagVariables = map[ir.Opcode]struct {
	get, set ir.Opcode
	v        variable
}{}

func init() {
	for _, f := range []struct {
		get, set ir.Opcode
		kind     varKind
	}{
		{ir.OpcodeGetZFlag, ir.OpcodeSetZFlag, varZFlag},
		{ir.OpcodeGetSFlag, ir.OpcodeSetSFlag, varSFlag},
		{ir.OpcodeGetCFlag, ir.OpcodeSetCFlag, varCFlag},
		{ir.OpcodeGetOFlag, ir.OpcodeSetOFlag, varOFlag},
	} {
		flagVariables[f.get] = struct {
			get, set ir.Opcode
			v        variable
		}{f.get, f.set, variable{kind: f.kind}}
		flagVariables[f.set] = flagVariables[f.get]
	}
}

// visitBlock rewrites every virtual-variable Get/Set in block, in program
// order, against the running currentDef state.
func (s *ssaState) visitBlock(block *ir.Block) error {
	for _, inst := range block.Instructions() {
		switch inst.Opcode() {
		case ir.OpcodeGetRegister:
			reg := inst.Arg(0).AsReg()
			if reg == ir.RZ {
				continue // left live for a downstream peephole pass to fold to zero.
			}
			val, err := s.readVariable(variable{kind: varReg, id: uint32(reg)}, block)
			if err != nil {
				return err
			}
			ir.ReplaceUsesWith(inst, val)
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeSetRegister:
			reg := inst.Arg(0).AsReg()
			if reg != ir.RZ {
				s.writeVariable(variable{kind: varReg, id: uint32(reg)}, block, inst.Arg(1))
			}
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeGetPred:
			pred := inst.Arg(0).AsPred()
			if pred == ir.PT {
				continue // always-true sink, left live.
			}
			val, err := s.readVariable(variable{kind: varPred, id: uint32(pred)}, block)
			if err != nil {
				return err
			}
			ir.ReplaceUsesWith(inst, val)
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeSetPred:
			pred := inst.Arg(0).AsPred()
			if pred != ir.PT {
				s.writeVariable(variable{kind: varPred, id: uint32(pred)}, block, inst.Arg(1))
			}
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeGetZFlag, ir.OpcodeGetSFlag, ir.OpcodeGetCFlag, ir.OpcodeGetOFlag:
			v := flagVariables[inst.Opcode()].v
			val, err := s.readVariable(v, block)
			if err != nil {
				return err
			}
			ir.ReplaceUsesWith(inst, val)
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeSetZFlag, ir.OpcodeSetSFlag, ir.OpcodeSetCFlag, ir.OpcodeSetOFlag:
			v := flagVariables[inst.Opcode()].v
			s.writeVariable(v, block, inst.Arg(0))
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeGetGotoVariable:
			id := inst.Arg(0).AsU32()
			val, err := s.readVariable(variable{kind: varGoto, id: id}, block)
			if err != nil {
				return err
			}
			ir.ReplaceUsesWith(inst, val)
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeSetGotoVariable:
			id := inst.Arg(0).AsU32()
			s.writeVariable(variable{kind: varGoto, id: id}, block, inst.Arg(1))
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeGetIndirectBranchVariable:
			val, err := s.readVariable(variable{kind: varIndirectBranch}, block)
			if err != nil {
				return err
			}
			ir.ReplaceUsesWith(inst, val)
			if err := ir.Remove(inst); err != nil {
				return err
			}

		case ir.OpcodeSetIndirectBranchVariable:
			s.writeVariable(variable{kind: varIndirectBranch}, block, inst.Arg(0))
			if err := ir.Remove(inst); err != nil {
				return err
			}
		}
	}
	return nil
}

// ConstructSSA runs the Braun et al. SSA construction algorithm over fn,
// rewriting every GetRegister/SetRegister/GetPred/.../SetIndirectBranchVariable
// instruction away and leaving a pure def-use SSA graph of the variables
// they stood in for. GetAttribute/SetAttribute and GetCbuf are left
// untouched: they address per-invocation fixed-function state and constant
// memory respectively, not a variable this pass tracks.
//
// Callers must have built fn with every block's predecessor list already
// final; ConstructSSA seals a block as soon as every declared predecessor
// has been visited, which for the structured, merge-instruction-delimited
// control flow this IR represents is always exactly the set already known
// when fn was assembled.
func ConstructSSA(fn *ir.Function) (Stats, error) {
	fn.RecomputeOrders()
	s := newSSAState(fn.Arena)

	remaining := make(map[*ir.Block]int, len(fn.Blocks()))
	for _, b := range fn.Blocks() {
		remaining[b] = len(b.ImmediatePredecessors())
	}

	for _, b := range fn.ReversePostOrder() {
		if remaining[b] == 0 {
			if err := s.sealBlock(b); err != nil {
				return s.stats, err
			}
		}
		if err := s.visitBlock(b); err != nil {
			return s.stats, err
		}
		for _, succ := range b.Successors() {
			remaining[succ]--
			if remaining[succ] == 0 {
				if err := s.sealBlock(succ); err != nil {
					return s.stats, err
				}
			}
		}
	}

	return s.stats, nil
}
