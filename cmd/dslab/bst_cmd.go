package main

import (
	"fmt"

	"github.com/g-m-twostay/dslab/Console"
	"github.com/g-m-twostay/dslab/Trees"
	"github.com/spf13/cobra"
)

const (
	keyCapacity = "capacity"
	keyDump     = "dump"
)

func newBSTCmd(config *baseConfiguration) *cobra.Command {
	var capacity uint32
	var dump bool
	cmd := &cobra.Command{
		Use:   "bst",
		Short: "Runs the binary search tree console",
		Long: `Reads commands from stdin until 9 or the end of input:
  1 k    insert k and print the keys
  2      print the keys in order
  3 k    search k
  4 k    depth of k
  5 k    parent and children of k
  6 k    minimum, and the last key walking right from the root while below k
  7 k    delete k
  8 a b  lowest common ancestor of a and b, -1 when undefined
  9      exit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := Trees.New[int, uint32](capacity)
			config.log.Debug().Uint32("capacity", capacity).Msg("bst console started")
			err := Console.NewSession(tree, cmd.OutOrStdout(), config.log).Run(cmd.Context(), cmd.InOrStdin())
			if dump {
				fmt.Fprint(cmd.OutOrStdout(), tree.String())
			}
			config.log.Debug().Uint("size", tree.Size()).Msg("bst console stopped")
			return err
		},
	}
	cmd.Flags().Uint32Var(&capacity, keyCapacity, 64, "number of tree nodes to allocate upfront")
	cmd.Flags().BoolVar(&dump, keyDump, false, "print the tree shape on exit")
	return cmd
}
