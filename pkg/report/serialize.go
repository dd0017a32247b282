// SPDX-License-Identifier: MIT

// Package report formats lookup results for the terminal, either as
// machine-readable documents or as colored tables.
package report

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v2"

	"neighgen/pkg/model"
)

// Canonical format names returned by Normalize.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatXML  = "xml"
)

var formatAliases = map[string]string{
	"js": FormatJSON, "jsn": FormatJSON, "json": FormatJSON,
	"y": FormatYAML, "yml": FormatYAML, "yaml": FormatYAML, "ym": FormatYAML, "yl": FormatYAML,
	"xml": FormatXML, "xm": FormatXML, "x": FormatXML, "htm": FormatXML, "html": FormatXML, "ml": FormatXML,
}

// Normalize resolves a format alias to its canonical name.
func Normalize(format string) (string, error) {
	f, ok := formatAliases[strings.ToLower(format)]
	if !ok {
		return "", fmt.Errorf("output format %q: %w", format, model.ErrInvalidFormat)
	}
	return f, nil
}

// Marshal serializes v into the requested format. The format may be any
// recognized alias. JSON honors pretty with 4-space indentation; XML
// honors it with one element per line. YAML is always block style.
func Marshal(format string, v any, pretty bool) (string, error) {
	f, err := Normalize(format)
	if err != nil {
		return "", err
	}
	switch f {
	case FormatJSON:
		var out []byte
		if pretty {
			out, err = json.MarshalIndent(v, "", "    ")
		} else {
			out, err = json.Marshal(v)
		}
		if err != nil {
			return "", fmt.Errorf("failed to encode JSON: %w", err)
		}
		return string(out), nil
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode YAML: %w", err)
		}
		return string(out), nil
	case FormatXML:
		return marshalXML(v, pretty)
	}
	return "", fmt.Errorf("output format %q: %w", format, model.ErrInvalidFormat)
}

// marshalXML renders arbitrary maps and slices as a <root> document with
// one element per map key and an <item> element per list entry. The
// stdlib encoder only handles structs, so the walk is done by hand.
func marshalXML(v any, pretty bool) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := writeXML(&buf, "root", v, 0, pretty); err != nil {
		return "", fmt.Errorf("failed to encode XML: %w", err)
	}
	if pretty {
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

func writeXML(buf *bytes.Buffer, tag string, v any, depth int, pretty bool) error {
	indent := func() {
		if pretty {
			buf.WriteString(strings.Repeat("    ", depth))
		}
	}
	nl := func() {
		if pretty {
			buf.WriteByte('\n')
		}
	}

	switch val := v.(type) {
	case map[string]any:
		indent()
		fmt.Fprintf(buf, "<%s>", tag)
		nl()
		for _, k := range sortedKeys(val) {
			if err := writeXML(buf, k, val[k], depth+1, pretty); err != nil {
				return err
			}
		}
		indent()
		fmt.Fprintf(buf, "</%s>", tag)
		nl()
	case []any:
		indent()
		fmt.Fprintf(buf, "<%s>", tag)
		nl()
		for _, item := range val {
			if err := writeXML(buf, "item", item, depth+1, pretty); err != nil {
				return err
			}
		}
		indent()
		fmt.Fprintf(buf, "</%s>", tag)
		nl()
	case []map[string]any:
		items := make([]any, len(val))
		for i, m := range val {
			items[i] = m
		}
		return writeXML(buf, tag, items, depth, pretty)
	case nil:
		indent()
		fmt.Fprintf(buf, "<%s/>", tag)
		nl()
	default:
		indent()
		fmt.Fprintf(buf, "<%s>", tag)
		if err := xml.EscapeText(buf, []byte(fmt.Sprint(val))); err != nil {
			return err
		}
		fmt.Fprintf(buf, "</%s>", tag)
		nl()
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Stable element order keeps documents diffable between runs.
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension conventionally used for a format
// alias, for messages naming the output file type.
func Extension(format string) string {
	f, err := Normalize(format)
	if err != nil {
		return format
	}
	return f
}
