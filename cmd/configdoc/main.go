// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// configdoc generates markdown documentation from Go struct tags.
// Usage: go run ./cmd/configdoc > doc/CONFIG_REFERENCE.md
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/neonlabsorg/neonpda/internal/util"
)

// EnvVar represents an environment variable configuration
type EnvVar struct {
	Name        string
	Description string
}

var envVars = []EnvVar{
	{"PDADERIVE_DATA", "Data directory (config.yaml, shell history)"},
	{"PDADERIVE_DEBUG", "Set to any value to enable debug logging"},
	{"NO_COLOR", "Set to any value to disable coloured output"},
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--help" {
		fmt.Println("Usage: go run ./cmd/configdoc > doc/CONFIG_REFERENCE.md")
		fmt.Println()
		fmt.Println("Generates markdown documentation from Go struct tags.")
		return
	}
	writeReference(os.Stdout)
}

func writeReference(w io.Writer) {
	_, _ = fmt.Fprintln(w, "# Configuration Reference")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Auto-generated from Go struct tags. Do not edit manually.")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "## pdaderive Configuration")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "File: `config.yaml` in the data directory (`-d` or `PDADERIVE_DATA`), or `-c <path>`.")
	_, _ = fmt.Fprintln(w, "Settings are read once at startup.")
	_, _ = fmt.Fprintln(w)
	printStructTable(w, reflect.TypeOf(util.Config{}))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "## Environment Variables")
	_, _ = fmt.Fprintln(w)
	printEnvVars(w)
}

func printStructTable(w io.Writer, t reflect.Type) {
	_, _ = fmt.Fprintln(w, "| Field | Type | Default | Description |")
	_, _ = fmt.Fprintln(w, "|-------|------|---------|-------------|")

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		fieldName := strings.Split(tag, ",")[0]

		desc := field.Tag.Get("description")
		if desc == "" {
			desc = "(no description)"
		}

		def := field.Tag.Get("default")
		switch def {
		case "":
			def = "(none)"
		case `""`:
			def = "(empty string)"
		}

		_, _ = fmt.Fprintf(w, "| `%s` | %s | `%s` | %s |\n", fieldName, formatType(field.Type), def, desc)
	}
}

func formatType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "uint"
	case reflect.Bool:
		return "bool"
	case reflect.Slice:
		return "[]" + formatType(t.Elem())
	case reflect.Ptr:
		return "*" + formatType(t.Elem())
	default:
		return t.String()
	}
}

func printEnvVars(w io.Writer) {
	_, _ = fmt.Fprintln(w, "| Variable | Description |")
	_, _ = fmt.Fprintln(w, "|----------|-------------|")

	for _, env := range envVars {
		_, _ = fmt.Fprintf(w, "| `%s` | %s |\n", env.Name, env.Description)
	}
}
