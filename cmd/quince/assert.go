package main

import (
	"flag"
	"fmt"
)

func cmdAssert(args []string) int {
	fs := flag.NewFlagSet("assert", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}
	pos := fs.Args()
	if len(pos) != 3 && len(pos) != 4 {
		fmt.Println("usage: quince assert S P O [G]")
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	graphRaw := ""
	if len(pos) == 4 {
		graphRaw = pos[3]
	}
	s, p, o, g, err := store.ParseQuadArgs(pos[0], pos[1], pos[2], graphRaw, false)
	if err != nil {
		return reportErr(err)
	}
	if err := store.AssertQuad(s, p, o, g); err != nil {
		return reportErr(err)
	}
	if err := store.Flush(); err != nil {
		return reportErr(err)
	}
	return exitSuccess
}
