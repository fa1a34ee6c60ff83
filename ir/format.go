package ir

import (
	"fmt"
	"strings"
)

// Format renders a full debug dump of the block: its header line (name,
// predecessors) followed by one line per instruction. This is developer
// tooling for cmd/shaderc and tests, not the excluded textual-codegen
// backend (no GLSL/GLASM is ever produced here).
func (b *Block) Format() string {
	var sb strings.Builder
	preds := make([]string, len(b.preds))
	for i, p := range b.preds {
		preds[i] = p.Name()
	}
	fmt.Fprintf(&sb, "%s: <-- (%s)\n", b.Name(), strings.Join(preds, ", "))
	for inst := b.root; inst != nil; inst = inst.next {
		fmt.Fprintf(&sb, "  %s\n", inst.Format())
	}
	return sb.String()
}

// Format renders every block of fn in reverse-post-order if available,
// falling back to creation order (e.g. before RecomputeOrders has run).
func (f *Function) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "func %s {\n", f.Name)
	blocks := f.rpo
	if len(blocks) == 0 {
		blocks = f.blocks
	}
	for _, blk := range blocks {
		for _, line := range strings.Split(strings.TrimRight(blk.Format(), "\n"), "\n") {
			sb.WriteString("  " + line + "\n")
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Format renders every function in the program.
func (p *Program) Format() string {
	var sb strings.Builder
	for _, fn := range p.Functions {
		sb.WriteString(fn.Format())
	}
	return sb.String()
}
