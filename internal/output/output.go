package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Stdout is where Print writes. Tests swap it for a buffer.
var Stdout io.Writer = os.Stdout

// ParseFormat validates a --format value. "auto" picks text on a terminal
// and YAML otherwise.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	case FormatAuto, "":
		if isTerminal(Stdout) {
			return FormatText, nil
		}
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q (use yaml, json, text or auto)", s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Print serializes v to Stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	case FormatText:
		return PrintText(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintPrettyJSON serializes v as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// PrintYAML serializes v as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
