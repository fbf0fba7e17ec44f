// Command setdemo demonstrates the dynamic, static and persisted set
// implementations.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand(viper.New()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
