package main

import "flag"

func cmdSort(args []string) int {
	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	all := fs.Bool("all", false, "touch every quad file, not just modified ones")
	since := fs.String("since", "", "touch files changed since this commit (default: HEAD)")
	// -s is the short form the post-merge hook invokes
	// (gitrepo.installPostMergeHook writes `quince sort -s "HEAD^"`).
	sinceShort := fs.String("s", "", "shorthand for -since")
	if err := fs.Parse(args); err != nil {
		return exitOpError
	}

	store, code := openStore()
	if store == nil {
		return code
	}

	sinceRev := *since
	if sinceRev == "" {
		sinceRev = *sinceShort
	}

	var err error
	if *all {
		err = store.SortAll()
	} else {
		err = store.SortModified(sinceRev)
	}
	if err != nil {
		return reportErr(err)
	}
	return exitSuccess
}
