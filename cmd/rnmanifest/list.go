package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rnmanifest/internal/manifest"
	"github.com/alexisbeaulieu97/rnmanifest/internal/ui"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list <manifest>",
		Short: "List the components declared by a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *listOptions) error {
	abs, m, err := loadManifest("list", path, rootFlags.log)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderListJSON(cmd, abs, m.Components())
	}

	if m.Components().Count() == 0 {
		return renderEmptyList(cmd)
	}

	return renderListTable(cmd, m.Components())
}

func renderEmptyList(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), "No components declared.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nAdd entries to the \"components\" array to make them launchable.")
	return nil
}

func renderListTable(cmd *cobra.Command, components *manifest.Collection) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "#\tNAME\tDISPLAY NAME\tBACKGROUND")

	styled := supportsColor(cmd.OutOrStdout())
	for i, comp := range components.Components() {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n",
			i,
			comp.Name(),
			valueOrFallback(comp.DisplayName(), "(no display name)"),
			ui.Swatch(comp.BackgroundColor(), styled),
		)
	}

	return writer.Flush()
}

type componentJSON struct {
	Name            string `json:"name"`
	DisplayName     string `json:"displayName"`
	BackgroundColor string `json:"backgroundColor"`
}

type listJSONPayload struct {
	Version    string          `json:"version"`
	Manifest   string          `json:"manifest"`
	Count      int             `json:"count"`
	Components []componentJSON `json:"components"`
}

func renderListJSON(cmd *cobra.Command, path string, components *manifest.Collection) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Manifest:   path,
		Count:      components.Count(),
		Components: make([]componentJSON, 0, components.Count()),
	}

	for _, comp := range components.Components() {
		payload.Components = append(payload.Components, toComponentJSON(comp))
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func toComponentJSON(comp manifest.ComponentInfo) componentJSON {
	return componentJSON{
		Name:            comp.Name(),
		DisplayName:     comp.DisplayName(),
		BackgroundColor: comp.BackgroundColor(),
	}
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
