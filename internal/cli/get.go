package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sligara7/phoebus-golog/pkg/olog"
)

var getAttachmentOut string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get RESOURCE_TYPE/RESOURCE_ID [flags]",
	Short: "Get a single resource by type and identifier",
	Long: `Get a single resource by type and identifier. The format is
RESOURCE_TYPE/RESOURCE_ID. Supported resource types include:
  - log/<id>
  - logbook/<name>
  - tag/<name>
  - property/<name>
  - level/<name>
  - template/<id>

Examples:
  # Get a log entry
  ologctl get log/1234

  # Get a logbook
  ologctl get logbook/operations

  # Get a log entry in JSON format
  ologctl get log/1234 -j`,
	Args: cobra.ExactArgs(1),
	RunE: getResource,
}

// getResource handles retrieving a single resource by type and identifier
func getResource(cmd *cobra.Command, args []string) error {
	parts := strings.SplitN(args[0], "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid resource format. Expected <resourceType>/<resourceId>")
	}
	resourceType := parts[0]
	resourceID := parts[1]

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	switch resourceType {
	case "log":
		id, err := strconv.ParseInt(resourceID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid log id %q", resourceID)
		}
		entry, err := client.Log(id)
		if err != nil {
			return err
		}
		if jsonOutput {
			printResultJSON(entry)
			return nil
		}
		printLogEntry(*entry)
	case "logbook":
		logbook, err := client.Logbook(resourceID)
		if err != nil {
			return err
		}
		printResource(logbook)
	case "tag":
		tag, err := client.Tag(resourceID)
		if err != nil {
			return err
		}
		printResource(tag)
	case "property":
		property, err := client.Property(resourceID)
		if err != nil {
			return err
		}
		printResource(property)
	case "level":
		level, err := client.Level(resourceID)
		if err != nil {
			return err
		}
		printResource(level)
	case "template":
		template, err := client.Template(resourceID)
		if err != nil {
			return err
		}
		printResource(template)
	default:
		return fmt.Errorf("unknown resource type %q", resourceType)
	}
	return nil
}

// printResource prints a resource as indented JSON, wrapped in the result
// envelope when JSON output is selected.
func printResource(value any) {
	if jsonOutput {
		printResultJSON(value)
		return
	}
	printJSON(value)
}

// attachmentCmd downloads an attachment from a log entry
var attachmentCmd = &cobra.Command{
	Use:   "attachment LOG_ID ATTACHMENT_NAME [flags]",
	Short: "Download an attachment from a log entry",
	Long: `Download an attachment from a log entry by name. The content is
written to the path given with --out, or to the attachment name in the
current directory.

Examples:
  # Download an attachment
  ologctl attachment 1234 plot.png

  # Download to a specific path
  ologctl attachment 1234 plot.png --out /tmp/plot.png`,
	Args: cobra.ExactArgs(2),
	RunE: downloadAttachment,
}

func downloadAttachment(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid log id %q", args[0])
	}
	name := args[1]

	savePath := getAttachmentOut
	if savePath == "" {
		savePath = name
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	content, err := client.DownloadAttachment(id, name, savePath)
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(map[string]any{
			"result": 1,
			"saved":  savePath,
			"bytes":  len(content),
		})
		return nil
	}
	okLabel.Printf("[OK] ")
	fmt.Printf("Saved %s (%d bytes)\n", savePath, len(content))
	return nil
}

// printLogEntry prints a log entry in human-readable form
func printLogEntry(entry olog.Log) {
	fmt.Printf("Log %d: %s\n", entry.ID, entry.Title)
	if entry.Owner != "" {
		fmt.Printf("Owner: %s\n", entry.Owner)
	}
	if entry.Level != "" {
		fmt.Printf("Level: %s\n", entry.Level)
	}
	if entry.CreatedDate != 0 {
		created := time.UnixMilli(entry.CreatedDate).Local()
		fmt.Printf("Created: %s\n", created.Format("2006-01-02 15:04:05 MST"))
	}
	if len(entry.Logbooks) > 0 {
		names := make([]string, 0, len(entry.Logbooks))
		for _, logbook := range entry.Logbooks {
			names = append(names, logbook.Name)
		}
		fmt.Printf("Logbooks: %s\n", strings.Join(names, ", "))
	}
	if len(entry.Tags) > 0 {
		names := make([]string, 0, len(entry.Tags))
		for _, tag := range entry.Tags {
			names = append(names, tag.Name)
		}
		fmt.Printf("Tags: %s\n", strings.Join(names, ", "))
	}
	for _, property := range entry.Properties {
		fmt.Printf("Property %s:\n", property.Name)
		for _, attr := range property.Attributes {
			fmt.Printf("  %s: %s\n", attr.Name, attr.Value)
		}
	}
	if len(entry.Attachments) > 0 {
		fmt.Println("Attachments:")
		for _, attachment := range entry.Attachments {
			fmt.Printf("  %s\n", attachment.Filename)
		}
	}
	if entry.Description != "" {
		fmt.Println()
		fmt.Println(entry.Description)
	}
}

// init initializes the get and attachment commands
func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(attachmentCmd)

	attachmentCmd.Flags().StringVarP(&getAttachmentOut, "out", "o", "", "Path to save the attachment to")
}
