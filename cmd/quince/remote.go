package main

import "fmt"

func cmdRemote(args []string) int {
	if len(args) == 0 {
		fmt.Println("usage: quince remote {add NAME IRI | remove NAME | list}")
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	switch args[0] {
	case "add":
		if len(args) != 3 {
			fmt.Println("usage: quince remote add NAME IRI")
			return exitOpError
		}
		if err := store.AddRemote(args[1], args[2]); err != nil {
			return reportErr(err)
		}
	case "remove":
		if len(args) != 2 {
			fmt.Println("usage: quince remote remove NAME")
			return exitOpError
		}
		if err := store.RemoveRemote(args[1]); err != nil {
			return reportErr(err)
		}
	case "list":
		for name, endpoint := range store.Remotes() {
			fmt.Printf("%s\t%s\n", name, endpoint)
		}
	default:
		fmt.Println("usage: quince remote {add NAME IRI | remove NAME | list}")
		return exitOpError
	}
	return exitSuccess
}
