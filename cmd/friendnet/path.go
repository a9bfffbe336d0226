package main

import (
	"fmt"
	"strings"

	"github.com/opd-ai/friendnet/friend"
	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print the shortest friendship route between two people",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.network()
			if err != nil {
				return err
			}
			route := n.FindPath(args[0], args[1])
			if len(route) == 0 {
				return fmt.Errorf("%w: %q -> %q", friend.ErrNoRoute, args[0], args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d hops)\n", strings.Join(route, " -> "), len(route)-1)
			return nil
		},
	}
}
