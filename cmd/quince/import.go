package main

import (
	"flag"
	"fmt"

	"github.com/networkedplanet/quince/term"
)

func cmdImport(args []string) int {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	graphFlag := fs.String("g", "", "graph IRI all imported quads are forced into")
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Println("usage: quince import FILE... [-g IRI]")
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	var graphOverride term.Term
	if *graphFlag != "" {
		g, err := store.ParseTerm(*graphFlag, false)
		if err != nil {
			return reportErr(err)
		}
		graphOverride = g
	}

	sink, err := store.Import(files, graphOverride)
	if err != nil {
		return reportErr(err)
	}
	for _, f := range sink.Failures {
		fmt.Println("quince:", f)
	}
	if len(sink.Failures) > 0 {
		return exitOpError
	}
	return exitSuccess
}
