package main

import (
	"flag"
	"fmt"

	"github.com/networkedplanet/quince/diff"
	"github.com/networkedplanet/quince/term"
)

func cmdDiff(args []string) int {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	subjFlag := fs.String("s", "", "restrict diff to this subject")
	graphFlag := fs.String("g", "", "restrict diff to this graph")
	sparqlFlag := fs.Bool("u", false, "render as a SPARQL Update instead of nquad_diff")
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}
	refs := fs.Args()
	if len(refs) > 2 {
		fmt.Println("usage: quince diff [-s SUBJ] [-g GRAPH] [-u] [COMMIT [COMMIT]]")
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	var opts diff.Options
	if *subjFlag != "" {
		t, err := store.ParseTerm(*subjFlag, false)
		if err != nil {
			return reportErr(err)
		}
		opts.Subject = t
	}
	if *graphFlag != "" {
		t, err := store.ParseTerm(*graphFlag, false)
		if err != nil {
			return reportErr(err)
		}
		if iri, ok := t.(term.IRI); ok {
			opts.Graphs = []term.IRI{iri}
		}
	}

	result, err := diff.Generate(store.Repo(), refs, opts)
	if err != nil {
		return reportErr(err)
	}
	if *sparqlFlag {
		fmt.Print(result.SPARQL())
	} else {
		fmt.Print(result.String())
	}
	return exitSuccess
}
