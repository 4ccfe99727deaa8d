// Command structdiff compares two structured documents (JSON, YAML, XML,
// or CSV) and prints a colorized, bounded-cost edit script between them.
package main

import (
	"fmt"
	"os"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

func main() {
	if err := injectEnvArgs(); err != nil {
		fmt.Fprintln(os.Stderr, "structdiff:", err)
		os.Exit(2)
	}

	cmd := buildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(handleErr(err))
	}
}

// injectEnvArgs appends the shell-quoted contents of STRUCTDIFF_ARGS to
// os.Args before cobra parses flags, letting a caller pin default flags
// through the environment.
func injectEnvArgs() error {
	raw := os.Getenv("STRUCTDIFF_ARGS")
	if raw == "" {
		return nil
	}

	extra, err := shlex.Split(raw)
	if err != nil {
		return errors.Wrapf(err, "STRUCTDIFF_ARGS")
	}
	os.Args = append(os.Args, extra...)

	return nil
}
