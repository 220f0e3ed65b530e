package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sligara7/phoebus-golog/pkg/olog"
	"github.com/sligara7/phoebus-golog/pkg/types"
)

var (
	// Log command flags
	logText       string
	logLogbooks   []string
	logTags       []string
	logProperties []string
	logAttach     []string
	logEnsure     bool
	logNoVerify   bool
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [flags]",
	Short: "Create a log entry",
	Long: `Create a log entry. Referenced logbooks, tags, and properties are
verified to exist before the entry is submitted; with --ensure, missing
resources are created first instead.

Properties are given as name.key=value and may repeat to build up multiple
keys of the same property.

Examples:
  # Create an entry
  ologctl log --text "beam restored" --logbook operations

  # Tag the entry and attach a file
  ologctl log --text "vacuum spike" --logbook operations --tag vacuum --attach plot.png

  # Auto-create missing resources
  ologctl log --text "first entry" --logbook commissioning --ensure

  # Attach structured metadata
  ologctl log --text "scan done" --logbook operations --property scan.scan_id=17`,
	RunE: createLogEntry,
}

// createLogEntry creates an entry through the simple facade
func createLogEntry(cmd *cobra.Command, args []string) error {
	if logText == "" {
		return fmt.Errorf("--text is required")
	}

	properties, err := parsePropertyFlags(logProperties)
	if err != nil {
		return err
	}

	client, err := newSimpleClient()
	if err != nil {
		return err
	}
	defer client.Close()

	params := olog.LogParams{
		Text:            logText,
		Logbooks:        logLogbooks,
		Tags:            logTags,
		Properties:      properties,
		AttachmentPaths: logAttach,
		Ensure:          logEnsure,
	}
	if logNoVerify {
		params.Verify = types.BoolFrom(false)
	}

	entry, err := client.Log(params)
	if err != nil {
		return err
	}

	if jsonOutput {
		printResultJSON(entry)
		return nil
	}
	okLabel.Fprintf(os.Stdout, "[OK] ")
	fmt.Printf("Created log entry %d\n", entry.ID)
	return nil
}

// parsePropertyFlags converts name.key=value flags to the facade's nested
// property map.
func parsePropertyFlags(flags []string) (map[string]map[string]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	properties := make(map[string]map[string]string)
	for _, flag := range flags {
		nameKey, value, found := strings.Cut(flag, "=")
		if !found {
			return nil, fmt.Errorf("invalid property %q: expected name.key=value", flag)
		}
		name, key, found := strings.Cut(nameKey, ".")
		if !found || name == "" || key == "" {
			return nil, fmt.Errorf("invalid property %q: expected name.key=value", flag)
		}
		if properties[name] == nil {
			properties[name] = make(map[string]string)
		}
		properties[name][key] = value
	}
	return properties, nil
}

// init initializes the log command with its flags and adds it to the root command
func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVarP(&logText, "text", "t", "", "Text of the entry, used as title and body")
	logCmd.Flags().StringArrayVarP(&logLogbooks, "logbook", "l", nil, "Logbook for the entry, repeatable")
	logCmd.Flags().StringArrayVarP(&logTags, "tag", "", nil, "Tag for the entry, repeatable")
	logCmd.Flags().StringArrayVarP(&logProperties, "property", "p", nil, "Property as name.key=value, repeatable")
	logCmd.Flags().StringArrayVarP(&logAttach, "attach", "a", nil, "File to attach, repeatable")
	logCmd.Flags().BoolVarP(&logEnsure, "ensure", "", false, "Create missing logbooks, tags, and properties")
	logCmd.Flags().BoolVarP(&logNoVerify, "no-verify", "", false, "Skip existence checks on referenced resources")
	logCmd.MarkFlagRequired("text")
}
