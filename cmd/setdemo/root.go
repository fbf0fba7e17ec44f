package main

import (
	"github.com/dogmatiq/setkit/internal/x/xzerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/log"
)

// env is the state shared by the subcommands once the configuration has been
// loaded.
type env struct {
	Config config
	Logs   log.LoggerProvider
}

// newRootCommand returns the root command, configured using v.
func newRootCommand(v *viper.Viper) *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "setdemo",
		Short:        "Demonstrate the set implementations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Pretty)

			e.Config = cfg
			e.Logs = xzerolog.NewLoggerProvider(logger)

			return nil
		},
	}

	bindFlags(root, v)

	root.AddCommand(
		newDynamicCommand(),
		newStaticCommand(),
		newDiskCommand(e),
	)

	return root
}
