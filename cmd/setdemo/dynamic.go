package main

import (
	"fmt"

	"github.com/dogmatiq/setkit/dynamicset"
	"github.com/spf13/cobra"
)

func newDynamicCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dynamic",
		Short: "Demonstrate the mutable in-memory set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			s := dynamicset.New(1, 2, 3, 4)
			fmt.Fprintf(w, "s = %s\n", s)
			fmt.Fprintf(w, "add 5: %t\n", s.Add(5))
			fmt.Fprintf(w, "add 3: %t\n", s.Add(3))
			fmt.Fprintf(w, "remove 2: %t\n", s.Remove(2))
			fmt.Fprintf(w, "s = %s (size %d)\n", s, s.Len())

			a := dynamicset.New(1, 2, 3, 4)
			b := dynamicset.New(3, 4, 5)
			fmt.Fprintf(w, "a = %s, b = %s\n", a, b)
			fmt.Fprintf(w, "a ∪ b = %s\n", a.Union(b))
			fmt.Fprintf(w, "a ∩ b = %s\n", a.Intersection(b))
			fmt.Fprintf(w, "a - b = %s\n", a.Difference(b))
			fmt.Fprintf(w, "a ⊆ b: %t\n", a.IsSubsetOf(b))

			s.Clear()
			fmt.Fprintf(w, "after clear: %s (empty %t)\n", s, s.IsEmpty())

			return nil
		},
	}
}
