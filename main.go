package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/richardtsai/pacfuncs/lib"
	"github.com/richardtsai/pacfuncs/tools"
)

func printUsage() {
	_, _ = fmt.Fprintf(os.Stderr,
		"Usage: pacfuncs [-c config] FUNCTION [ARG...]\n"+
			"       pacfuncs [tool] [arguments]\n\n")
	_, _ = fmt.Fprintf(os.Stderr, "Main arguments:\n")
	flag.PrintDefaults()
	_, _ = fmt.Fprintln(os.Stderr)
	tools.PrintUsage(os.Stderr)
}

func main() {
	flag.Usage = printUsage
	tools.Init()
	if len(os.Args) > 1 && tools.Has(os.Args[1]) { // run tools
		tools.Run(os.Args[1], os.Args[1:])
		return
	}

	configFile := flag.String(
		"c", "", "configuration file. "+
			"Will be searched in some default locations if not specified.")
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	evaluator, err := lib.LoadEvaluator(*configFile)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	res, err := evaluator.Call(flag.Arg(0), flag.Args()[1:]...)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "evaluation aborted: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(res)
}
