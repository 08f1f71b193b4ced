// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Command smallsh is a small interactive shell: word splitting,
// parameter expansion, a handful of builtins, and fork/exec/wait
// process management.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smallsh/shell"
)

var verbose bool

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	code := 1
	cmd := &cobra.Command{
		Use:           "smallsh [script]",
		Short:         "a small POSIX-like interactive shell",
		Args:          atMostOneArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := runShell(args)
			code = c
			return err
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each line's expanded words to stderr")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		return 1
	}
	return code
}

// atMostOneArg reports the startup error for 2+ positional arguments,
// with a fixed message rather than Cobra's default arity wording.
func atMostOneArg(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments")
	}
	return nil
}

// runShell dispatches on argument count: zero args reads stdin
// interactively, one arg opens that path non-interactively.
func runShell(args []string) (int, error) {
	var opts []shell.Option
	if verbose {
		opts = append(opts, shell.WithVerbose(true))
	}

	if len(args) == 0 {
		sh := shell.New(shell.NewLineReader(os.Stdin), os.Stderr, true, opts...)
		return sh.Run(), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return 1, err
	}
	defer f.Close()

	sh := shell.New(shell.NewLineReader(f), os.Stderr, false, opts...)
	return sh.Run(), nil
}
