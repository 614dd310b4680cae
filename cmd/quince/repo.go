package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"

	"github.com/networkedplanet/quince"
	"github.com/networkedplanet/quince/internal/quinceerr"
	"github.com/networkedplanet/quince/nquads"
)

// openStore opens the store rooted at the current directory, printing
// a diagnostic and returning a ready-to-use exit code on failure (or
// -1 if the store opened fine).
func openStore() (*quince.Store, int) {
	store, err := quince.Open(".")
	if errors.Is(err, git.ErrRepositoryNotExists) {
		fmt.Fprintln(os.Stderr, "quince: not a Git repository (run `quince init` first)")
		return nil, exitNoRepo
	}
	if err != nil {
		log.WithError(err).Error("quince: internal error opening repository")
		return nil, exitFatal
	}
	return store, -1
}

// reportErr maps a store/CLI-level error to an exit code, printing a
// user-facing message for the operation-error kinds spec.md §7 names
// and logging everything else as an internal error.
func reportErr(err error) int {
	if err == nil {
		return exitSuccess
	}
	switch err.(type) {
	case *nquads.ParseError, *nquads.NoSerializerError, *quinceerr.NoParserError,
		*quinceerr.PreconditionFailedError, *quinceerr.NamespaceExistsError, *quinceerr.NoSuchNamespaceError,
		*quinceerr.RemoteExistsError, *quinceerr.NoSuchRemoteError, *quinceerr.ArgumentError, *quinceerr.MultiError:
		fmt.Fprintln(os.Stderr, "quince:", err)
		return exitOpError
	default:
		log.WithError(err).Error("quince: internal error")
		return exitFatal
	}
}
