// Command shaderc is a debug tool: it assembles one of a few canned demo
// programs through the frontend package, runs SSA construction over it,
// and dumps the resulting IR. It does not decode real shader bytes and
// produces no GLSL/GLASM — this is the library's own smoke-test CLI,
// shipped alongside the library the way a compiler ships its own IR
// dumper.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmulationChannel/yuzu/frontend"
	"github.com/EmulationChannel/yuzu/internal/log"
	"github.com/EmulationChannel/yuzu/ir"
	"github.com/EmulationChannel/yuzu/ir/opt"
)

type nullEnvironment struct{}

func (nullEnvironment) ReadCbuf(binding, offset uint32) uint32 { return 0 }
func (nullEnvironment) ReadInstruction(pc uint32) uint64        { return 0 }

var demos = map[string]func(*ir.Arena) *ir.Function{
	"straight-line": buildStraightLine,
	"diamond":       buildDiamond,
	"loop":          buildLoop,
}

func buildStraightLine(arena *ir.Arena) *ir.Function {
	fn := ir.NewFunction(arena, "straight_line")
	v := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, fn.Entry)
	_ = v.Dispatch(frontend.DecodedInstruction{Mnemonic: "MOV", Dest: 0, Src1: 1})
	_ = v.Dispatch(frontend.DecodedInstruction{Mnemonic: "IADD3", Dest: 2, Src1: 0, Src2: 1})
	_ = v.Dispatch(frontend.DecodedInstruction{Mnemonic: "EXIT"})
	return fn
}

func buildDiamond(arena *ir.Arena) *ir.Function {
	fn := ir.NewFunction(arena, "diamond")
	left := fn.NewBlock("left")
	right := fn.NewBlock("right")
	merge := fn.NewBlock("merge")

	entryVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, fn.Entry)
	_ = entryVisitor.Emit.BranchConditional(ir.ImmU1(true), left, right)

	leftVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, left)
	_ = leftVisitor.Dispatch(frontend.DecodedInstruction{Mnemonic: "MOV", Dest: 0, Src1: 1})
	_ = leftVisitor.Emit.Branch(merge)

	rightVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, right)
	_ = rightVisitor.Dispatch(frontend.DecodedInstruction{Mnemonic: "MOV", Dest: 0, Src1: 2})
	_ = rightVisitor.Emit.Branch(merge)

	mergeVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, merge)
	_ = mergeVisitor.Dispatch(frontend.DecodedInstruction{Mnemonic: "EXIT"})
	return fn
}

func buildLoop(arena *ir.Arena) *ir.Function {
	fn := ir.NewFunction(arena, "loop")
	header := fn.NewBlock("header")
	body := fn.NewBlock("body")
	exit := fn.NewBlock("exit")

	entryVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, fn.Entry)
	_ = entryVisitor.Dispatch(frontend.DecodedInstruction{Mnemonic: "MOV", Dest: 0, Src1: 1})
	_ = entryVisitor.Emit.Branch(header)

	headerVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, header)
	_ = headerVisitor.Emit.LoopMerge(exit, body)
	_ = headerVisitor.Emit.BranchConditional(ir.ImmU1(true), body, exit)

	bodyVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, body)
	_ = bodyVisitor.Dispatch(frontend.DecodedInstruction{Mnemonic: "IADD3", Dest: 0, Src1: 0, Src2: 2})
	_ = bodyVisitor.Emit.Branch(header)

	exitVisitor := frontend.NewTranslatorVisitor(nullEnvironment{}, arena, exit)
	_ = exitVisitor.Dispatch(frontend.DecodedInstruction{Mnemonic: "EXIT"})
	return fn
}

func main() {
	var demoName, logLevel string

	root := &cobra.Command{
		Use:   "shaderc",
		Short: "Assemble a demo IR program, run SSA construction, and dump it",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := demos[demoName]
			if !ok {
				return fmt.Errorf("unknown demo %q", demoName)
			}

			logger, err := log.New(logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()

			arena := ir.NewArena()
			fn := build(arena)

			stats, err := opt.DefaultPasses().Run(fn)
			if err != nil {
				return err
			}
			logger.Debugw("ssa construction complete",
				"phis_created", stats.PhisCreated,
				"phis_elided", stats.PhisElided,
				"undefs_inserted", stats.UndefsInserted,
			)

			prog := ir.NewProgram()
			prog.AddFunction(fn)
			fmt.Print(prog.Format())
			return nil
		},
	}
	root.Flags().StringVar(&demoName, "demo", "straight-line", "demo program to build (straight-line, diamond, loop)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
