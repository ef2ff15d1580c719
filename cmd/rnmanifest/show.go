package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	"github.com/alexisbeaulieu97/rnmanifest/internal/ui"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <manifest> <component>",
		Short: "Show one component of a manifest by registry name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output component details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, path, name string, opts *showOptions) error {
	if strings.TrimSpace(name) == "" {
		return newCommandError("show", "validating component name", errors.New("component name cannot be empty"), "Provide the registry name of the component to inspect.")
	}

	_, m, err := loadManifest("show", path, rootFlags.log)
	if err != nil {
		return err
	}

	comp, ok := m.Components().FindComponent(name)
	if !ok {
		rootFlags.log.With("component", name).Debug("component not found")
		return newCommandError("show", fmt.Sprintf("looking up component %q", name),
			fmt.Errorf("manifest declares no component named %q", name),
			fmt.Sprintf("Run 'rnmanifest list %s' to view declared components.", path))
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(toComponentJSON(comp))
	}

	return renderShowTable(cmd, comp)
}

func renderShowTable(cmd *cobra.Command, comp manifest.ComponentInfo) error {
	styled := supportsColor(cmd.OutOrStdout())

	fmt.Fprintf(cmd.OutOrStdout(), "Component:    %s\n", comp.Name())
	fmt.Fprintf(cmd.OutOrStdout(), "Display Name: %s\n", valueOrFallback(comp.DisplayName(), "(none)"))
	fmt.Fprintf(cmd.OutOrStdout(), "Background:   %s\n", ui.Swatch(comp.BackgroundColor(), styled))
	return nil
}
