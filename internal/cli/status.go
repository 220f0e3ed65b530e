package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get service information and configuration",
	Long: `Get service information and configuration. This command returns the
service name and version along with the server-side configuration, such as
the default markup scheme.

Examples:
  # Get service status
  ologctl status

  # Get service status in JSON format
  ologctl status -j`,
	RunE: getStatus,
}

// getStatus retrieves the service info and configuration endpoints
func getStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	info, err := client.ServiceInfo()
	if err != nil {
		if jsonOutput {
			kv := map[string]string{
				"version_cli": getCLIVersion(),
				"error":       "Unable to connect to service: " + err.Error(),
			}
			printJSON(kv)
		} else {
			fmt.Printf("ologctl %s\n", getCLIVersion())
			fmt.Println("Error: Unable to connect to service: " + err.Error())
		}
		return ErrAlreadyHandled
	}

	conf, err := client.ServiceConfiguration()
	if err != nil {
		// older services do not expose /configuration
		conf = map[string]any{}
	}

	if jsonOutput {
		output := map[string]any{
			"result":        1,
			"version_cli":   getCLIVersion(),
			"service":       info,
			"configuration": conf,
		}
		printJSON(output)
		return nil
	}

	fmt.Printf("ologctl %s\n", getCLIVersion())
	fmt.Printf("Service URL: %s\n", client.Config().BaseURL)
	if name, ok := info["name"].(string); ok {
		fmt.Printf("Service: %s\n", name)
	}
	if version, ok := info["version"].(string); ok {
		fmt.Printf("Version: %s\n", version)
	}
	if len(conf) > 0 {
		fmt.Println()
		fmt.Println("Configuration:")
		for key, value := range conf {
			fmt.Printf("  %s: %v\n", key, value)
		}
	}
	return nil
}

// init initializes the status command and adds it to the root command
func init() {
	rootCmd.AddCommand(statusCmd)
}
