package main

import (
	"github.com/halcyon-network/faucet-bot/pkg/cli/commands"
)

func main() {
	commands.Execute()
}
