// Command provablevm runs, commits, and proves/verifies the correctness
// of provable VM program executions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fatal("expected a subcommand: run, commit, setup, prove, or verify")
	}

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(os.Args[2:])
	case "commit":
		err = commitCmd(os.Args[2:])
	case "setup":
		err = setupCmd(os.Args[2:])
	case "prove":
		err = proveCmd(os.Args[2:])
	case "verify":
		err = verifyCmd(os.Args[2:])
	default:
		fatal(fmt.Sprintf("unknown subcommand %q: expected run, commit, setup, prove, or verify", os.Args[1]))
	}

	if err != nil {
		fatal(err.Error())
	}
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "provablevm:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
