package main

import (
	"github.com/g-m-twostay/dslab/Console"
	"github.com/spf13/cobra"
)

func newGraphCmd(config *baseConfiguration) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Prints an undirected graph read from stdin",
		Long: `Reads "V E" and E edges "u v" from stdin, then prints the adjacency
matrix, the adjacency lists, BFS and DFS orders and the distances from vertex 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Console.RunGraph(cmd.InOrStdin(), cmd.OutOrStdout(), config.log)
		},
	}
}
