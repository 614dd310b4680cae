package main

import (
	"flag"
	"fmt"

	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/term"
)

func cmdExport(args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	formatFlag := fs.String("f", "", "output format (nquads, nt); inferred from extension if omitted")
	var graphFlags stringList
	fs.Var(&graphFlags, "g", "restrict export to this graph (repeatable)")
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}
	outArgs := fs.Args()
	if len(outArgs) != 1 {
		fmt.Println("usage: quince export FILE [-g IRI]... [-f FMT]")
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	graphs := make([]term.IRI, 0, len(graphFlags))
	for _, raw := range graphFlags {
		g, err := store.ParseTerm(raw, false)
		if err != nil {
			return reportErr(err)
		}
		iri, ok := g.(term.IRI)
		if !ok {
			return reportErr(&quinceerr.ArgumentError{Msg: fmt.Sprintf("graph filter %q is not an IRI", raw)})
		}
		graphs = append(graphs, iri)
	}

	if err := store.Export(outArgs[0], *formatFlag, graphs...); err != nil {
		return reportErr(err)
	}
	return exitSuccess
}

// stringList implements flag.Value, accumulating repeated -g flags.
type stringList []string

func (l *stringList) String() string { return fmt.Sprint([]string(*l)) }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
