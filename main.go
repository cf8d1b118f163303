// Package main is the entry point for the vidping application.
package main

import (
	"github.com/samber/lo"
	"github.com/vidping/vidping/cmd"
	"github.com/vidping/vidping/config"
	"github.com/vidping/vidping/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
