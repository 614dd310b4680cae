package main

import (
	"flag"
	"fmt"
)

func cmdRetract(args []string) int {
	fs := flag.NewFlagSet("retract", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}
	pos := fs.Args()
	if len(pos) != 3 && len(pos) != 4 {
		fmt.Println("usage: quince retract S P O [G]   (any position may be *)")
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
	s, p, o, g, err := store.ParseQuadArgs(pos[0], pos[1], pos[2], graphRaw, true)
	if err != nil {
		return reportErr(err)
	}
	removed, err := store.RetractQuad(s, p, o, g)
	if err != nil {
		return reportErr(err)
	}
	if err := store.Flush(); err != nil {
		return reportErr(err)
	}
	for _, line := range removed {
		fmt.Print(line)
	}
	return exitSuccess
}
