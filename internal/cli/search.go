package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sligara7/phoebus-golog/pkg/olog"
	"github.com/sligara7/phoebus-golog/pkg/types"
)

var (
	// Search command flags
	searchText    string
	searchTitle   string
	searchLogbook string
	searchTag     string
	searchOwner   string
	searchLevel   string
	searchFrom    string
	searchTo      string
	searchStart   int
	searchSize    int
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [flags]",
	Short: "Search log entries",
	Long: `Search log entries by text, logbook, tag, owner, level, and time range.
Time bounds accept the service's relative syntax (e.g. "8 hours", "2 days")
or absolute timestamps.

Examples:
  # Search entry text
  ologctl search --text "*vacuum*"

  # Entries in a logbook over the last day
  ologctl search --logbook operations --from "1 day"

  # Page through results
  ologctl search --text "*rf*" --start 50 --size 25`,
	RunE: searchLogs,
}

// searchLogs handles searching for log entries
func searchLogs(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	opts := olog.SearchOptions{}
	if searchText != "" {
		opts.Text = types.StringFrom(searchText)
	}
	if searchTitle != "" {
		opts.Title = types.StringFrom(searchTitle)
	}
	if searchLogbook != "" {
		opts.Logbook = types.StringFrom(searchLogbook)
	}
	if searchTag != "" {
		opts.Tag = types.StringFrom(searchTag)
	}
	if searchOwner != "" {
		opts.Owner = types.StringFrom(searchOwner)
	}
	if searchLevel != "" {
		opts.Level = types.StringFrom(searchLevel)
	}
	if searchFrom != "" {
		opts.From = types.StringFrom(searchFrom)
	}
	if searchTo != "" {
		opts.To = types.StringFrom(searchTo)
	}
	if cmd.Flags().Changed("start") {
		opts.Start = types.IntFrom(searchStart)
	}
	if cmd.Flags().Changed("size") {
		opts.Size = types.IntFrom(searchSize)
	}

	result, err := client.SearchLogs(opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		printResultJSON(result)
		return nil
	}

	fmt.Printf("Found %d entries\n", result.HitCount)
	for _, entry := range result.Logs {
		created := ""
		if entry.CreatedDate != 0 {
			created = time.UnixMilli(entry.CreatedDate).Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("- [%d] %s", entry.ID, entry.Title)
		if created != "" {
			fmt.Printf(" (%s)", created)
		}
		fmt.Println()
	}
	return nil
}

// init initializes the search command with its flags and adds it to the root command
func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchText, "text", "t", "", "Text to search for, wildcards allowed")
	searchCmd.Flags().StringVarP(&searchTitle, "title", "", "", "Title to search for")
	searchCmd.Flags().StringVarP(&searchLogbook, "logbook", "l", "", "Restrict to a logbook")
	searchCmd.Flags().StringVarP(&searchTag, "tag", "", "", "Restrict to a tag")
	searchCmd.Flags().StringVarP(&searchOwner, "owner", "", "", "Restrict to an owner")
	searchCmd.Flags().StringVarP(&searchLevel, "level", "", "", "Restrict to a level")
	searchCmd.Flags().StringVarP(&searchFrom, "from", "", "", "Start of the time range")
	searchCmd.Flags().StringVarP(&searchTo, "to", "", "", "End of the time range")
	searchCmd.Flags().IntVarP(&searchStart, "start", "", 0, "Result offset for paging")
	searchCmd.Flags().IntVarP(&searchSize, "size", "", 0, "Maximum number of results")
}
