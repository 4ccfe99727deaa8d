package main

import (
	"fmt"

	"github.com/katalvlaran/structdiff/diff"
	"github.com/katalvlaran/structdiff/format/formatter"
	"github.com/katalvlaran/structdiff/format/printer"
	"github.com/katalvlaran/structdiff/parse"
	"github.com/katalvlaran/structdiff/treenode"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// run implements the command: parse both files, diff them, print the
// result, and report the final cost on stderr.
func run(cmd *cobra.Command, opts *cliOptions, fromPath, toPath string) error {
	if opts.format != "text" {
		return usageErrorf(`unsupported --format %q: only "text" is implemented`, opts.format)
	}

	fromTree, err := loadTree(fromPath, opts.fromFormat)
	if err != nil {
		return err
	}
	toTree, err := loadTree(toPath, opts.toFormat)
	if err != nil {
		return err
	}

	diffOpts := diff.DefaultOptions()
	diffOpts.AllowKeyEdits = !opts.noKeyEdits
	diffOpts.Seqalign.Enabled = !(opts.noListEdits || opts.noListEditDistance)

	e := diff.Diff(fromTree, toTree, diffOpts)
	if !e.Valid() {
		return &cliError{cause: fmt.Errorf("diff cancelled before reaching a definitive cost"), code: 1}
	}

	p := printer.New(cmd.OutOrStdout())
	p.SetColorEnabled(opts.color && !opts.noColor)
	p.SetBright(opts.bright)

	fmtOpts := formatter.Options{JoinLists: opts.joinLists, JoinDictItems: opts.joinDictItems}
	formatter.New(p, fmtOpts).Format(e)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.ErrOrStderr(), "cost: %d\n", e.Bounds().UpperBound())

	return nil
}

// loadTree builds a tree from path, using formatFlag when non-empty and
// falling back to extension-based detection otherwise.
func loadTree(path, formatFlag string) (treenode.Node, error) {
	if formatFlag == "" {
		tree, err := parse.BuildTreeAuto(path)
		if err != nil {
			return nil, errors.Wrapf(err, "parse.BuildTreeAuto")
		}

		return tree, nil
	}

	f, err := parse.ParseFormat(formatFlag)
	if err != nil {
		return nil, usageErrorf("%v", err)
	}
	tree, err := parse.BuildTree(path, f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse.BuildTree")
	}

	return tree, nil
}
