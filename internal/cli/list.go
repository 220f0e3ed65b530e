package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listInactive bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list RESOURCE_TYPE [flags]",
	Short: "List resources of a specific type",
	Long: `List resources of a specific type. Supported resource types include:
  - logbooks
  - tags
  - properties
  - levels
  - templates

Examples:
  # List all logbooks
  ologctl list logbooks

  # List tags in JSON format
  ologctl list tags -j

  # List properties including inactive ones
  ologctl list properties --inactive`,
	Args: cobra.ExactArgs(1),
	RunE: listResources,
}

// listResources handles listing resources of a specific type
func listResources(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	switch args[0] {
	case "logbooks":
		logbooks, err := client.Logbooks()
		if err != nil {
			return err
		}
		if jsonOutput {
			printResultJSON(logbooks)
			return nil
		}
		fmt.Println("Logbooks:")
		for _, logbook := range logbooks {
			fmt.Printf("- %s", logbook.Name)
			if logbook.Owner != "" {
				fmt.Printf(" (owner: %s)", logbook.Owner)
			}
			fmt.Println()
		}
	case "tags":
		tags, err := client.Tags()
		if err != nil {
			return err
		}
		if jsonOutput {
			printResultJSON(tags)
			return nil
		}
		fmt.Println("Tags:")
		for _, tag := range tags {
			fmt.Printf("- %s (%s)\n", tag.Name, tag.State)
		}
	case "properties":
		properties, err := client.Properties(listInactive)
		if err != nil {
			return err
		}
		if jsonOutput {
			printResultJSON(properties)
			return nil
		}
		fmt.Println("Properties:")
		for _, property := range properties {
			fmt.Printf("- %s\n", property.Name)
			for _, attr := range property.Attributes {
				fmt.Printf("    %s\n", attr.Name)
			}
		}
	case "levels":
		levels, err := client.Levels()
		if err != nil {
			return err
		}
		if jsonOutput {
			printResultJSON(levels)
			return nil
		}
		fmt.Println("Levels:")
		for _, level := range levels {
			if level.DefaultLevel {
				fmt.Printf("- %s (default)\n", level.Name)
			} else {
				fmt.Printf("- %s\n", level.Name)
			}
		}
	case "templates":
		templates, err := client.Templates()
		if err != nil {
			return err
		}
		if jsonOutput {
			printResultJSON(templates)
			return nil
		}
		fmt.Println("Templates:")
		for _, template := range templates {
			fmt.Printf("- %s (%s)\n", template.Name, template.ID)
		}
	default:
		return fmt.Errorf("unknown resource type %q: expected logbooks, tags, properties, levels, or templates", args[0])
	}
	return nil
}

// printResultJSON wraps a value in the standard result envelope and prints it
func printResultJSON(value any) {
	printJSON(map[string]any{
		"result": 1,
		"value":  value,
	})
}

// init initializes the list command with its flags and adds it to the root command
func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&listInactive, "inactive", "", false, "Include inactive properties")
}
