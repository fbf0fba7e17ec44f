package main

import (
	"fmt"

	"github.com/dogmatiq/setkit/staticset"
	"github.com/spf13/cobra"
)

func newStaticCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "static",
		Short: "Demonstrate the immutable set functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			s := staticset.New(1, 2, 3, 4)
			fmt.Fprintf(w, "s = %v\n", s)

			added := staticset.Add(s, 5)
			removed := staticset.Remove(added, 2)
			fmt.Fprintf(w, "add 5, remove 2 = %v (size %d)\n", removed, staticset.Len(removed))
			fmt.Fprintf(w, "s is unchanged = %v\n", s)

			a := staticset.New(1, 2, 3, 4)
			b := staticset.New(3, 4, 5)
			fmt.Fprintf(w, "a = %v, b = %v\n", a, b)
			fmt.Fprintf(w, "a ∪ b = %v\n", staticset.Union(a, b))
			fmt.Fprintf(w, "a ∩ b = %v\n", staticset.Intersection(a, b))
			fmt.Fprintf(w, "a - b = %v\n", staticset.Difference(a, b))
			fmt.Fprintf(w, "a ⊆ b: %t\n", staticset.IsSubsetOf(a, b))

			return nil
		},
	}
}
