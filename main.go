// Package main is the entry point for the chapconv application.
package main

import (
	"github.com/chapconv/chapconv/cmd"
	"github.com/chapconv/chapconv/config"
	"github.com/chapconv/chapconv/container"
	"github.com/chapconv/chapconv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go container.CollectGarbage()

	cmd.Execute()
}
