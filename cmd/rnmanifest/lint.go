package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/rnmanifest/internal/lint"
	"github.com/alexisbeaulieu97/rnmanifest/internal/ui"
)

type lintOptions struct {
	jsonOutput bool
}

func newLintCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint <manifest>",
		Short: "Report likely mistakes in a manifest",
		Long: `Lint reads the manifest and reports problems that do not stop it from
loading: invalid registry names, empty display names, unrecognised
background colors and duplicate component names. Exits non-zero when
any error-severity finding is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, rootFlags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output findings as JSON")

	return cmd
}

type lintJSONPayload struct {
	Manifest string         `json:"manifest"`
	Passed   bool           `json:"passed"`
	Findings []lint.Finding `json:"findings"`
}

func runLint(cmd *cobra.Command, rootFlags *rootFlags, path string, opts *lintOptions) error {
	abs, m, err := loadManifest("lint", path, rootFlags.log)
	if err != nil {
		return err
	}

	findings := lint.Check(m.Components())
	rootFlags.log.WithFields(map[string]any{"findings": len(findings)}).Debug("lint complete")

	if opts.jsonOutput {
		payload := lintJSONPayload{Manifest: abs, Passed: !lint.HasErrors(findings), Findings: findings}
		if payload.Findings == nil {
			payload.Findings = []lint.Finding{}
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(payload); err != nil {
			return err
		}
	} else if err := renderLintTable(cmd, findings); err != nil {
		return err
	}

	if err := lint.Err(findings); err != nil {
		return newCommandError("lint", "checking components", err, "Registry names must start with a letter, '_' or '$' and contain no spaces.")
	}
	return nil
}

func renderLintTable(cmd *cobra.Command, findings []lint.Finding) error {
	if len(findings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No problems found.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "SEVERITY\tLOCATION\tMESSAGE")

	styled := supportsColor(cmd.OutOrStdout())
	for _, f := range findings {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", formatSeverity(f.Severity, styled), f.Location(), f.Message)
	}

	return writer.Flush()
}

func formatSeverity(severity lint.Severity, styled bool) string {
	if !styled {
		return string(severity)
	}
	if severity == lint.SeverityError {
		return ui.ErrorStyle.Render(string(severity))
	}
	return ui.WarningStyle.Render(string(severity))
}
