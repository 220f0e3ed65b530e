package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sligara7/phoebus-golog/pkg/olog"
)

var (
	// Create command flags
	createFilename string
	createOwner    string
	createInactive bool
	createDefault  bool
	createAttrs    []string
	ignoreErrors   bool
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create {logbook|tag|property|level} NAME | create -f FILENAME",
	Short: "Create a resource by name or from a file",
	Long: `Create a resource by name, or create multiple resources from a YAML
file. When a file is given the resource types are determined by the 'kind'
field of each document. Supported kinds: Logbook, Tag, Property, Level,
Template.

Examples:
  # Create a logbook
  ologctl create logbook operations --owner olog-admin

  # Create an inactive tag
  ologctl create tag obsolete --inactive

  # Create a property with attribute keys
  ologctl create property scan --attr scan_id --attr plan

  # Create a default level
  ologctl create level Urgent --default

  # Create resources from a file
  ologctl create -f resources.yaml`,
	Args: cobra.RangeArgs(0, 2),
	RunE: createResource,
}

// createResource handles resource creation by name or from a file
func createResource(cmd *cobra.Command, args []string) error {
	if createFilename != "" {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine -f with positional arguments")
		}
		return createFromFile(createFilename)
	}

	if len(args) != 2 {
		return fmt.Errorf("expected a resource type and name, or -f FILENAME")
	}
	resourceType := args[0]
	name := args[1]

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	state := olog.StateActive
	if createInactive {
		state = olog.StateInactive
	}

	switch resourceType {
	case "logbook":
		created, err := client.CreateLogbook(name, createOwner, state)
		if err != nil {
			return err
		}
		reportCreated("logbook", created.Name)
	case "tag":
		created, err := client.CreateTag(name, state)
		if err != nil {
			return err
		}
		reportCreated("tag", created.Name)
	case "property":
		attributes := make([]olog.Attribute, 0, len(createAttrs))
		for _, key := range createAttrs {
			attributes = append(attributes, olog.Attribute{Name: key, State: olog.StateActive})
		}
		created, err := client.CreateProperty(name, createOwner, attributes, state)
		if err != nil {
			return err
		}
		reportCreated("property", created.Name)
	case "level":
		created, err := client.CreateLevel(name, createDefault)
		if err != nil {
			return err
		}
		reportCreated("level", created.Name)
	default:
		return fmt.Errorf("unknown resource type %q: expected logbook, tag, property, or level", resourceType)
	}
	return nil
}

// createFromFile applies every resource document in a YAML file, in kind
// order so that referenced resources exist before their dependents.
func createFromFile(filename string) error {
	docs, err := LoadResourceFile(filename)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	orderedKinds := []string{"Logbook", "Tag", "Property", "Level", "Template"}
	byKind := make(map[string][]resourceDoc)
	for _, doc := range docs {
		kind := normalizeKind(doc.Kind)
		byKind[kind] = append(byKind[kind], doc)
	}
	for kind := range byKind {
		if !contains(orderedKinds, kind) {
			return fmt.Errorf("unsupported resource kind %q", kind)
		}
	}

	var statusValues []map[string]any
	defer func() {
		if len(statusValues) > 0 && jsonOutput {
			printJSON(statusValues)
		}
	}()

	for _, kind := range orderedKinds {
		for _, doc := range byKind[kind] {
			name, err := applyResourceDoc(client, kind, doc)
			status := map[string]any{"kind": kind, "name": name, "created": err == nil}
			if err != nil {
				status["error"] = err.Error()
				statusValues = append(statusValues, status)
				if !jsonOutput {
					errorLabel.Fprintf(os.Stderr, "[ERROR] ")
					fmt.Fprintf(os.Stderr, "%s: %s: %s\n", kind, name, err.Error())
				}
				if !ignoreErrors {
					return ErrAlreadyHandled
				}
				continue
			}
			statusValues = append(statusValues, status)
			if !jsonOutput {
				reportCreated(strings.ToLower(kind), name)
			}
		}
	}
	return nil
}

// applyResourceDoc decodes a document into its typed resource and sends it
func applyResourceDoc(client *olog.Client, kind string, doc resourceDoc) (string, error) {
	switch kind {
	case "Logbook":
		var logbook olog.Logbook
		if err := json.Unmarshal(doc.JSON, &logbook); err != nil {
			return doc.Name, err
		}
		_, err := client.UpdateLogbooks([]olog.Logbook{logbook})
		return logbook.Name, err
	case "Tag":
		var tag olog.Tag
		if err := json.Unmarshal(doc.JSON, &tag); err != nil {
			return doc.Name, err
		}
		_, err := client.UpdateTags([]olog.Tag{tag})
		return tag.Name, err
	case "Property":
		var property olog.Property
		if err := json.Unmarshal(doc.JSON, &property); err != nil {
			return doc.Name, err
		}
		_, err := client.UpdateProperties([]olog.Property{property})
		return property.Name, err
	case "Level":
		var level olog.Level
		if err := json.Unmarshal(doc.JSON, &level); err != nil {
			return doc.Name, err
		}
		_, err := client.CreateLevels([]olog.Level{level})
		return level.Name, err
	case "Template":
		var template olog.Template
		if err := json.Unmarshal(doc.JSON, &template); err != nil {
			return doc.Name, err
		}
		_, err := client.CreateTemplate(template)
		return template.Name, err
	}
	return doc.Name, fmt.Errorf("unsupported resource kind %q", kind)
}

// reportCreated prints a creation confirmation
func reportCreated(kind, name string) {
	if jsonOutput {
		printJSON(map[string]any{"kind": kind, "name": name, "created": true})
		return
	}
	okLabel.Fprintf(os.Stdout, "[OK] ")
	fmt.Fprintf(os.Stdout, "Created %s %s\n", kind, name)
}

// normalizeKind maps kind values to their canonical capitalized form so
// that "logbook" and "Logbook" are equivalent in resource files.
func normalizeKind(kind string) string {
	lower := strings.ToLower(kind)
	if lower == "" {
		return kind
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// init initializes the create command with its flags and adds it to the root command
func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createFilename, "filename", "f", "", "YAML file describing resources to create")
	createCmd.Flags().StringVarP(&createOwner, "owner", "", "", "Owner of the resource")
	createCmd.Flags().BoolVarP(&createInactive, "inactive", "", false, "Create the resource in the Inactive state")
	createCmd.Flags().BoolVarP(&createDefault, "default", "", false, "Mark the level as the default")
	createCmd.Flags().StringArrayVarP(&createAttrs, "attr", "", nil, "Attribute key for a property, repeatable")
	createCmd.Flags().BoolVarP(&ignoreErrors, "ignore-errors", "i", false, "Ignore errors and continue with the next resource")
}
