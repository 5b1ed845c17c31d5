package tools

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/richardtsai/pacfuncs/pac"
)

func init() {
	allTools = append(allTools, parseTool{})
}

// parseTool explains the value returned by a FindProxyForURL function.
type parseTool struct{}

func (parseTool) Name() string {
	return "parse"
}

func (parseTool) Description() string {
	return "Parse a FindProxyForURL result, e.g. 'PROXY 10.0.0.1:8080; DIRECT'"
}

func (parseTool) Run(args []string) {
	r, err := pac.ParseResult(strings.Join(args[1:], " "))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printResult(os.Stdout, r)
}

func printResult(out io.Writer, r pac.Result) {
	w := tabwriter.NewWriter(out, 4, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tType\tHost\tPort")
	for i, d := range r.Normalize() {
		host, port := "-", "-"
		if d.IsProxy() {
			host = d.ProxyHost()
			port = fmt.Sprint(d.ProxyPort())
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, d.Type, host, port)
	}
	_ = w.Flush()
}
