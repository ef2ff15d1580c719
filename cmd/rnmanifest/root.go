package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rnmanifest/internal/logger"
)

type rootFlags struct {
	verbose   bool
	logFormat string

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "rnmanifest",
		Short:         "Inspect the launchable components of a React Native app manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if flags.verbose {
				level = "debug"
			}

			log, err := logger.New(logger.Options{
				Level:  level,
				Format: logger.Format(flags.logFormat),
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return newCommandError(cmd.Name(), "configuring logging", err, "Use --log-format console or --log-format json.")
			}
			flags.log = log.With("command", cmd.Name())
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", string(logger.FormatConsole), "Log output format (console|json)")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
