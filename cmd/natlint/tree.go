package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"natlint/internal/doctree"
	"natlint/internal/lint"
	"natlint/internal/source"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file.sol>",
	Short: "Print the declaration tree of a file with its parsed NatSpec",
	Long: `Print every declaration of a Solidity file in nesting order together
with the NatSpec entries attached to it. Comment lines that could not be
parsed as tags are listed with the reason they were dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	items, err := lint.BuildTree(fs, id)
	if err != nil {
		var failure *lint.ParseFailure
		if errors.As(err, &failure) {
			for _, d := range failure.Diagnostics {
				start, _ := fs.Resolve(d.Primary)
				fmt.Fprintf(os.Stderr, "%s:%d:%d: %s: %s\n", args[0], start.Line, start.Col, d.Code.ID(), d.Message)
			}
		}
		return fmt.Errorf("failed to build tree: %w", err)
	}
	return printTree(cmd.OutOrStdout(), fs.Get(id), items)
}

// printTree writes one line per declaration, indented by depth, followed
// by its entries:
//
//	contract Vault (3:1)
//	  @title Vault
//	  function deposit (8:5)
//	    ! "@returns amount" dropped: unknown tag: @returns
func printTree(out io.Writer, file *source.File, items []*doctree.Item) error {
	var b strings.Builder
	depth := map[*doctree.Item]int{}
	doctree.Walk(items, func(parent, item *doctree.Item) bool {
		d := 0
		if parent != nil {
			d = depth[parent] + 1
		}
		depth[item] = d
		indent := strings.Repeat("  ", d)

		pos := file.Resolve(item.Loc().Start)
		name := item.Name()
		if name == "" {
			name = "<unnamed>"
		}
		fmt.Fprintf(&b, "%s%s %s (%d:%d)\n", indent, item.Kind(), name, pos.Line, pos.Col)
		for _, e := range item.Comments.Entries() {
			fmt.Fprintf(&b, "%s  %s\n", indent, e)
		}
		for _, dropped := range item.Comments.Dropped() {
			fmt.Fprintf(&b, "%s  ! %q dropped: %v\n", indent, dropped.Line, dropped.Err)
		}
		return true
	})
	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	return nil
}
