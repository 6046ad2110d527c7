package main

import (
	"os"

	"github.com/loykin/scrappa/cmd/scrappa/commands"
	"github.com/loykin/scrappa/internal/common"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		common.GetLogger().Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
