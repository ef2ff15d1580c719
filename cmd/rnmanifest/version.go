package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionOptions struct {
	short bool
}

func newVersionCmd() *cobra.Command {
	opts := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the rnmanifest release and build details",
		Long: `Print which rnmanifest release is installed.

Displays:
  - release version, source commit and build date
  - Go toolchain the binary was built with

Use --short when only the version string is needed, for example when
comparing the installed reader against a manifest tooling requirement.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.short {
				fmt.Fprintln(out, version)
				return nil
			}

			fmt.Fprintf(out, "rnmanifest %s\n", version)
			fmt.Fprintf(out, "  Commit:  %s\n", commit)
			fmt.Fprintf(out, "  Built:   %s\n", date)
			fmt.Fprintf(out, "  Go:      %s\n", runtime.Version())
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.short, "short", false, "Print only the version string")

	return cmd
}
