// SPDX-License-Identifier: MIT

package gen

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"neighgen/pkg/config"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// ResolveTemplate maps an OS identifier to its parsed neighbor template
// through the configured template map. A literal name ending in .tmpl
// bypasses the map: it is looked up among the bundled templates first and
// falls back to a file on disk, so operators can point at their own
// templates.
func ResolveTemplate(cfg *config.Settings, osName string) (*template.Template, error) {
	file := osName
	if !strings.HasSuffix(osName, ".tmpl") {
		mapped, ok := cfg.App.TemplateMap[strings.ToLower(osName)]
		if !ok {
			return nil, fmt.Errorf("unknown OS %q: no template mapping", osName)
		}
		file = mapped
	}

	data, err := templatesFS.ReadFile("templates/" + file)
	if err != nil {
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("template %q not found: %w", file, err)
		}
	}

	tpl, err := template.New(file).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", file, err)
	}
	return tpl, nil
}
