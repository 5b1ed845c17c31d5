package tools

import (
	"fmt"

	"github.com/richardtsai/pacfuncs/lib"
)

func init() {
	allTools = append(allTools, versionTool{})
}

type versionTool struct{}

func (versionTool) Name() string {
	return "version"
}

func (versionTool) Description() string {
	return "Print version information"
}

func (versionTool) Run(args []string) {
	fmt.Printf("pacfuncs\nVersion: %s\nBuilt on: %s\n",
		lib.Version, lib.BuiltTime)
}
