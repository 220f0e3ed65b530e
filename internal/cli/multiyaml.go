package cli

import (
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// resourceDoc is one document from a multi-document resource file, converted
// to JSON for typed decoding.
type resourceDoc struct {
	Kind string
	Name string
	JSON []byte
}

// kindProbe extracts the routing fields from a document.
type kindProbe struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// LoadResourceFile reads a YAML file containing one or more resource
// documents separated by ---. Each document must carry a kind field.
func LoadResourceFile(filename string) ([]resourceDoc, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parseResourceDocs(data)
}

func parseResourceDocs(data []byte) ([]resourceDoc, error) {
	var docs []resourceDoc
	for _, chunk := range splitYAMLDocuments(data) {
		jsonData, err := yaml.YAMLToJSON([]byte(chunk))
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if string(jsonData) == "null" {
			continue
		}

		var probe kindProbe
		if err := yaml.Unmarshal([]byte(chunk), &probe); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if probe.Kind == "" {
			return nil, fmt.Errorf("resource document is missing a kind field")
		}
		docs = append(docs, resourceDoc{Kind: probe.Kind, Name: probe.Name, JSON: jsonData})
	}
	return docs, nil
}

// splitYAMLDocuments splits multi-document YAML on --- separators at line
// starts. Empty documents are dropped.
func splitYAMLDocuments(data []byte) []string {
	var docs []string
	for _, chunk := range strings.Split("\n"+string(data), "\n---") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		docs = append(docs, chunk)
	}
	return docs
}
