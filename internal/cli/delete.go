package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete RESOURCE_TYPE/RESOURCE_NAME [flags]",
	Short: "Delete a resource by type and name",
	Long: `Delete a resource by type and name. The format is
RESOURCE_TYPE/RESOURCE_NAME. Supported resource types include:
  - logbook/<name>
  - tag/<name>
  - property/<name>
  - level/<name>
  - template/<id>

Examples:
  # Delete a logbook
  ologctl delete logbook/scratch

  # Delete a tag
  ologctl delete tag/obsolete`,
	Args: cobra.ExactArgs(1),
	RunE: deleteResource,
}

// deleteResource handles the deletion of a resource by type and name
func deleteResource(cmd *cobra.Command, args []string) error {
	parts := strings.SplitN(args[0], "/", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid resource format. Expected <resourceType>/<resourceName>")
	}
	resourceType := parts[0]
	resourceName := parts[1]

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	var deleted bool
	switch resourceType {
	case "logbook":
		deleted, err = client.DeleteLogbook(resourceName)
	case "tag":
		deleted, err = client.DeleteTag(resourceName)
	case "property":
		deleted, err = client.DeleteProperty(resourceName)
	case "level":
		deleted, err = client.DeleteLevel(resourceName)
	case "template":
		deleted, err = client.DeleteTemplate(resourceName)
	default:
		return fmt.Errorf("unknown resource type %q: expected logbook, tag, property, level, or template", resourceType)
	}
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("service did not confirm deletion of %s/%s", resourceType, resourceName)
	}

	if jsonOutput {
		printJSON(map[string]any{"deleted": args[0]})
		return nil
	}
	fmt.Printf("Successfully deleted %s/%s\n", resourceType, resourceName)
	return nil
}

// init initializes the delete command and adds it to the root command
func init() {
	rootCmd.AddCommand(deleteCmd)
}
