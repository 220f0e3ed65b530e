// Package cli implements the ologctl command set, a thin operational
// front end over the Olog client library.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sligara7/phoebus-golog/internal/common/logtrace"
	"github.com/sligara7/phoebus-golog/pkg/olog"
)

var (
	// Global flags
	jsonOutput bool
	configFile string
	envPrefix  string
	debugMode  bool
)

var ErrAlreadyHandled = errors.New("already handled")

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ologctl [command] [flags]",
	Short: "ologctl - A command line interface for the Olog electronic logbook service",
	Long: `ologctl is a command line interface for the Olog electronic logbook service.
It can create log entries with attachments, manage logbooks, tags, properties,
levels, and templates, and search existing entries.

Examples:
  # Check the service
  ologctl status

  # Create a log entry, auto-creating missing logbooks and tags
  ologctl log --text "beam restored" --logbook operations --tag rf --ensure

  # Search entries
  ologctl search --text "*vacuum*" --logbook operations

  # Create resources from a YAML file
  ologctl create -f resources.yaml`,
	PersistentPreRun: preRunHandlePersistents,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Set up persistent flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "", "", "Path to configuration file to override default resolution")
	rootCmd.PersistentFlags().StringVarP(&envPrefix, "env-prefix", "", "", "Environment variable prefix (default OLOG_)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "", false, "Enable debug logging of requests")

	// Add commands
	rootCmd.AddCommand(newVersionCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error

	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, ErrAlreadyHandled) {
			os.Exit(1)
		}
		if jsonOutput {
			kv := map[string]string{
				"error": err.Error(),
			}
			printJSON(kv)
		} else {
			errorLabel.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// preRunHandlePersistents handles persistent flags before command execution
func preRunHandlePersistents(cmd *cobra.Command, args []string) {
	logtrace.SetDebug(debugMode)
}

// clientOptions translates the persistent flags into resolver options.
func clientOptions() olog.Options {
	return olog.Options{
		ConfigFile: configFile,
		EnvPrefix:  envPrefix,
	}
}

// newClient builds a resource client from the persistent flags.
func newClient() (*olog.Client, error) {
	client, err := olog.NewClient(clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to configure client: %w", err)
	}
	return client, nil
}

// newSimpleClient builds the convenience facade from the persistent flags.
func newSimpleClient() (*olog.SimpleClient, error) {
	client, err := olog.NewSimpleClient(clientOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to configure client: %w", err)
	}
	return client, nil
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ologctl",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				kv := map[string]string{
					"version": getCLIVersion(),
				}
				printJSON(kv)
			} else {
				cmd.Printf("ologctl %s\n", getCLIVersion())
			}
		},
	}
}

// printJSON prints the given map as JSON to stdout
func printJSON(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return "v0.1.0"
}
