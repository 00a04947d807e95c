// Package main is the entry point for the pencuri application.
package main

import (
	"github.com/pencuri-cli/pencuri/cmd"
	"github.com/pencuri-cli/pencuri/config"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
