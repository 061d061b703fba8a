package main

import (
	"os"

	"github.com/wtt-cli/wtt/cmd/wtt/commands"
	"github.com/wtt-cli/wtt/internal/config"
	"github.com/wtt-cli/wtt/internal/logger"
)

func main() {
	config.LoadFromEnv()

	if err := commands.NewRootCmd().Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
