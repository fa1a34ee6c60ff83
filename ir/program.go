package ir

// Successors returns the block's outgoing control-flow edges, derived
// from its terminator instruction: zero for Return, one for Branch, two
// for BranchConditional. A block with no terminator yet (still being
// built) reports no successors.
func (b *Block) Successors() []*Block {
	term := b.tail
	if term == nil {
		return nil
	}
	switch term.opcode {
	case OpcodeBranch:
		if term.target != nil {
			return []*Block{term.target}
		}
	case OpcodeBranchConditional:
		var out []*Block
		if term.target != nil {
			out = append(out, term.target)
		}
		if term.target2 != nil {
			out = append(out, term.target2)
		}
		return out
	}
	return nil
}

// Function is an ordered list of blocks forming one shader-program
// function, together with the reverse-post-order and post-order listings
// optimization passes traverse by.
type Function struct {
	Name  string
	Arena *Arena

	Entry  *Block
	blocks []*Block

	rpo []*Block
	po  []*Block

	// Info is a placeholder for resource-usage summaries computed by
	// later, out-of-scope backend passes.
	Info FunctionInfo
}

// FunctionInfo summarizes resource usage for a compiled function. Its
// fields are intentionally left for out-of-scope backend passes to
// populate; the core only guarantees the struct exists so a backend has
// somewhere to record results without forcing a dependency back into it.
type FunctionInfo struct {
	NumInstructions int
	UsesIndirectBranch bool
}

// NewFunction creates a Function with a freshly allocated entry block.
func NewFunction(arena *Arena, name string) *Function {
	f := &Function{Name: name, Arena: arena}
	f.Entry = arena.NewBlock()
	f.Entry.SetName("entry")
	f.blocks = append(f.blocks, f.Entry)
	return f
}

// NewBlock allocates a new block owned by this function's arena and
// tracks it for traversal/ordering purposes.
func (f *Function) NewBlock(name string) *Block {
	b := f.Arena.NewBlock()
	if name != "" {
		b.SetName(name)
	}
	f.blocks = append(f.blocks, b)
	return b
}

// Blocks returns every block allocated for this function, in creation order.
func (f *Function) Blocks() []*Block { return f.blocks }

// ReversePostOrder returns the blocks in reverse post-order from the
// entry block, as computed by the last RecomputeOrders call.
func (f *Function) ReversePostOrder() []*Block { return f.rpo }

// PostOrder returns the blocks in post-order from the entry block, as
// computed by the last RecomputeOrders call.
func (f *Function) PostOrder() []*Block { return f.po }

// RecomputeOrders walks the function's CFG from Entry and records its
// post-order and reverse-post-order block listings. The SSA construction
// pass requires this to have been run first: it visits blocks in reverse
// of the post-order so that forward edges are established before their
// targets are visited.
func (f *Function) RecomputeOrders() {
	visited := make(map[*Block]bool, len(f.blocks))
	po := make([]*Block, 0, len(f.blocks))

	var visit func(*Block)
	visit = func(blk *Block) {
		if visited[blk] {
			return
		}
		visited[blk] = true
		for _, succ := range blk.Successors() {
			visit(succ)
		}
		po = append(po, blk)
	}
	visit(f.Entry)

	f.po = po
	f.rpo = make([]*Block, len(po))
	for i, blk := range po {
		f.rpo[len(po)-1-i] = blk
	}
}

// Program is a sequence of functions — the unit later passes and backends
// consume.
type Program struct {
	Functions []*Function
}

// NewProgram returns an empty Program.
func NewProgram() *Program {
	return &Program{}
}

// AddFunction appends fn to the program.
func (p *Program) AddFunction(fn *Function) {
	p.Functions = append(p.Functions, fn)
}
