package main

import "fmt"

func cmdNamespace(args []string) int {
	if len(args) == 0 {
		fmt.Println("usage: quince namespace {add PREFIX IRI | remove PREFIX | list}")
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	switch args[0] {
	case "add":
		if len(args) != 3 {
			fmt.Println("usage: quince namespace add PREFIX IRI")
			return exitOpError
		}
		if err := store.AddNamespace(args[1], args[2]); err != nil {
			return reportErr(err)
		}
	case "remove":
		if len(args) != 2 {
			fmt.Println("usage: quince namespace remove PREFIX")
			return exitOpError
		}
		if err := store.RemoveNamespace(args[1]); err != nil {
			return reportErr(err)
		}
	case "list":
		for prefix, iri := range store.Namespaces() {
			fmt.Printf("%s\t%s\n", prefix, iri)
		}
	default:
		fmt.Println("usage: quince namespace {add PREFIX IRI | remove PREFIX | list}")
		return exitOpError
	}
	return exitSuccess
}
