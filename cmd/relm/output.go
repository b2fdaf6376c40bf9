package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lerenn/release-manager/pkg/model"
	"gopkg.in/yaml.v3"
)

// Output format names accepted by the --output flag.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// unscheduledLabel is shown for versions without a release date.
const unscheduledLabel = "unscheduled"

// printStructured marshals data as JSON or YAML to stdout.
func printStructured(data interface{}) error {
	switch outputFormat {
	case formatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(out))
	case formatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Print(string(out))
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
	return nil
}

// displayActions renders an action list as a table.
func displayActions(actions []model.Action) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Kind", "Issue", "From", "To", "Reason"})
	for _, action := range actions {
		tw.AppendRow(table.Row{
			action.Kind,
			action.IssueKey,
			versionName(action.From),
			versionName(action.To),
			action.Reason,
		})
	}
	tw.Render()
}

// displayResults renders per-action apply outcomes as a table.
func displayResults(results []model.ActionResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Issue", "Kind", "To", "Result"})
	for _, result := range results {
		outcome := "ok"
		if result.Err != nil {
			outcome = result.Err.Error()
		}
		tw.AppendRow(table.Row{
			result.Action.IssueKey,
			result.Action.Kind,
			versionName(result.Action.To),
			outcome,
		})
	}
	tw.Render()
}

// displayManifest renders manifest entries grouped by version.
func displayManifest(entries []model.ManifestEntry) {
	for i, entry := range entries {
		if i > 0 {
			fmt.Println()
		}

		fmt.Printf("%s [%s] (version %s, %s)\n",
			entry.Version.Name, entry.ProjectKey, entry.Version.ID, releaseDate(entry.Version))

		if len(entry.Epics) == 0 {
			fmt.Println("  (no epics assigned)")
			continue
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"Epic", "Issue", "Summary", "Status"})
		for _, epic := range entry.Epics {
			tw.AppendRow(table.Row{epic.Key, epic.Key, epic.Summary, epic.Status})
			for _, story := range epic.Stories {
				tw.AppendRow(table.Row{epic.Key, story.Key, story.Summary, story.Status})
			}
		}
		tw.Render()
	}
}

// versionName formats an optional fix version for display.
func versionName(v *model.FixVersion) string {
	if v == nil {
		return "-"
	}
	return v.Name
}

// releaseDate formats a version's release date for display.
func releaseDate(v model.FixVersion) string {
	if v.ReleaseDate == nil {
		return unscheduledLabel
	}
	return v.ReleaseDate.Format("2006-01-02")
}
