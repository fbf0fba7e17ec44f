package main

import (
	"fmt"

	"github.com/dogmatiq/setkit/diskset"
	"github.com/spf13/cobra"
)

func newDiskCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "disk",
		Short: "Demonstrate the persisted set using the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			store, closeStore, err := openStore(ctx, e.Config.Store)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeStore(); err == nil {
					err = cerr
				}
			}()

			sets := diskset.New[int](
				store,
				diskset.WithTelemetry(nil, nil, e.Logs),
			)

			const (
				a    = "set_a.json"
				b    = "set_b.json"
				dest = "set_c.json"
			)

			fmt.Fprintf(w, "initialize %s: %t\n", a, sets.Initialize(ctx, a, 1, 2, 3))
			fmt.Fprintf(w, "add 10: %t\n", sets.Add(ctx, a, 10))
			fmt.Fprintf(w, "add 10: %t\n", sets.Add(ctx, a, 10))
			fmt.Fprintf(w, "remove 2: %t\n", sets.Remove(ctx, a, 2))
			fmt.Fprintf(w, "%s = %v (size %d)\n", a, sets.Load(ctx, a), sets.Size(ctx, a))
			fmt.Fprintf(w, "%s contains 3: %t\n", a, sets.Contains(ctx, a, 3))

			sets.Initialize(ctx, b, 3, 10, 20)
			fmt.Fprintf(w, "%s = %v\n", b, sets.Load(ctx, b))

			sets.UnionInto(ctx, a, b, dest)
			fmt.Fprintf(w, "%s ∪ %s = %v\n", a, b, sets.Load(ctx, dest))

			sets.IntersectInto(ctx, a, b, dest)
			fmt.Fprintf(w, "%s ∩ %s = %v\n", a, b, sets.Load(ctx, dest))

			sets.DifferenceInto(ctx, a, b, dest)
			fmt.Fprintf(w, "%s - %s = %v\n", a, b, sets.Load(ctx, dest))

			fmt.Fprintf(w, "%s ⊆ %s: %t\n", dest, a, sets.IsSubsetOf(ctx, dest, a))

			sets.Clear(ctx, dest)
			fmt.Fprintf(w, "after clear %s empty: %t\n", dest, sets.IsEmpty(ctx, dest))

			fmt.Fprintf(w, "nonexistent.json = %v (exists %t)\n", sets.Load(ctx, "nonexistent.json"), sets.Exists(ctx, "nonexistent.json"))

			return nil
		},
	}
}
