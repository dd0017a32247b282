// SPDX-License-Identifier: MIT

package config

import (
	"embed"
	"fmt"
)

//go:embed extras
var extras embed.FS

// exampleMap resolves gen-config names to bundled example files.
var exampleMap = map[string]string{
	"config":      "example.yaml",
	"yaml":        "example.yaml",
	"yml":         "example.yaml",
	"example":     "example.yaml",
	"env":         "example.env",
	"environment": "example.env",
	"dotenv":      "example.env",
}

// ExampleNames lists the accepted gen-config selectors.
func ExampleNames() []string {
	return []string{"config", "yaml", "yml", "example", "env", "environment", "dotenv"}
}

// Example returns the bundled example config identified by name.
func Example(name string) (string, error) {
	file, ok := exampleMap[name]
	if !ok {
		return "", fmt.Errorf("unknown example config %q", name)
	}
	data, err := extras.ReadFile("extras/" + file)
	if err != nil {
		return "", fmt.Errorf("failed to read example config: %w", err)
	}
	return string(data), nil
}
