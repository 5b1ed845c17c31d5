package tools

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/richardtsai/pacfuncs/lib"
	"github.com/richardtsai/pacfuncs/pac"
)

func init() {
	allTools = append(allTools, &consoleEvalTool{})
}

// consoleEvalTool evaluates PAC predicates interactively.
type consoleEvalTool struct {
	consoleTool
	evaluator *pac.Evaluator
}

func (consoleEvalTool) Name() string {
	return "console"
}

func (consoleEvalTool) Description() string {
	return "Evaluate PAC functions interactively"
}

func (t *consoleEvalTool) Run(args []string) {
	fs := flag.NewFlagSet("console", flag.ExitOnError)
	configFile := fs.String("c", "", "pacfuncs configuration file")
	if fs.Parse(args[1:]) == flag.ErrHelp {
		fs.Usage()
		os.Exit(0)
	}

	var err error
	if t.evaluator, err = lib.LoadEvaluator(*configFile); err != nil {
		panic(err)
	}

	if err := t.setupConsole("pac> "); err != nil {
		panic(err)
	}
	defer t.teardownConsole()
	t.addFunctionCmds()
	t.runLoop()
}

func (t *consoleEvalTool) addFunctionCmds() {
	for _, name := range pac.FunctionNames() {
		name := name
		t.addCmd(name, functionUsage(name),
			func(term *terminal.Terminal, args []string) bool {
				return t.eval(term, name, args)
			})
	}
	t.addCmd("result", "result DIRECTIVE[; DIRECTIVE...]", t.parseResult)
}

func (t *consoleEvalTool) eval(
	term *terminal.Terminal, name string, args []string) bool {
	res, err := t.evaluator.Call(name, args...)
	if err != nil {
		_, _ = fmt.Fprintf(term, "evaluation aborted: %v\n", err)
	} else {
		_, _ = fmt.Fprintln(term, res)
	}
	return true
}

func (t *consoleEvalTool) parseResult(
	term *terminal.Terminal, args []string) bool {
	r, err := pac.ParseResult(strings.Join(args, " "))
	if err != nil {
		_, _ = fmt.Fprintf(term, "invalid result: %v\n", err)
		return true
	}
	printResult(term, r)
	return true
}
