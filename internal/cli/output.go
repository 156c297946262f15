// Package cli implements the schemadrift command line: subcommand
// execution, text/JSON rendering, and exit codes.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	j "github.com/goccy/go-json"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch OutputFormat(s) {
	case FormatText, FormatJSON:
		return OutputFormat(s), true
	}
	return FormatText, false
}

var (
	banner    = color.New(color.FgCyan)
	okText    = color.New(color.FgGreen)
	okBold    = color.New(color.FgGreen, color.Bold)
	failBold  = color.New(color.FgRed, color.Bold)
	warnText  = color.New(color.FgYellow)
	errorBold = color.New(color.FgRed, color.Bold)
)

func printJSON(w io.Writer, v any) {
	b, _ := j.MarshalIndent(v, "", "    ")
	fmt.Fprintln(w, string(b))
}

// printError reports a failure on stderr in the selected format.
func printError(format OutputFormat, msg string) {
	if format == FormatJSON {
		printJSON(os.Stderr, map[string]string{"status": "error", "message": msg})
		return
	}
	errorBold.Fprintf(os.Stderr, "Error: %s\n", msg)
}

// printWarning reports a non-fatal condition on stderr in the selected
// format.
func printWarning(format OutputFormat, msg string) {
	if format == FormatJSON {
		printJSON(os.Stderr, map[string]string{"status": "warning", "message": msg})
		return
	}
	warnText.Fprintf(os.Stderr, "Warning: %s\n", msg)
}
