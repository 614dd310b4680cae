package main

import (
	"flag"
	"fmt"

	"github.com/networkedplanet/quince"
)

func cmdInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}
	if _, err := quince.Init("."); err != nil {
		log.WithError(err).Error("quince: init failed")
		return exitFatal
	}
	fmt.Println("initialized quince store")
	return exitSuccess
}
