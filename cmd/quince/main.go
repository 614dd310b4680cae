// Command quince is the CLI front end over the quince package: a flat
// command-table dispatcher in the same style as go-git's own
// cli/go-git/main.go, rather than a third-party CLI framework.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	exitSuccess = 0
	exitOpError = 1
	exitFatal   = 3
	exitNoRepo  = 4
)

var log = logrus.New()

type command func(args []string) int

var commands = map[string]command{
	"init":      cmdInit,
	"import":    cmdImport,
	"export":    cmdExport,
	"assert":    cmdAssert,
	"retract":   cmdRetract,
	"diff":      cmdDiff,
	"namespace": cmdNamespace,
	"remote":    cmdRemote,
	"sort":      cmdSort,
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if len(os.Args) < 2 {
		usage()
		os.Exit(exitOpError)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "quince: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(exitOpError)
	}
	os.Exit(cmd(os.Args[2:]))
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: quince <command> [arguments]")
	fmt.Fprintln(os.Stderr, "commands: init, import, export, assert, retract, diff, namespace, remote, sort")
}
