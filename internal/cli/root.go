package cli

import (
	"flag"
	"fmt"
	"os"

	schemadrift "github.com/schemadrift/schemadrift"
)

// ConfigFile is looked up in the working directory; it may override the
// sampling caps and the default output format.
const ConfigFile = ".schemadrift.yaml"

// GlobalOptions carry settings shared by every subcommand.
type GlobalOptions struct {
	Format OutputFormat
	Opts   schemadrift.Options
}

// Execute runs the CLI and returns the process exit code.
func Execute(argv []string) int {
	globalFS := flag.NewFlagSet("schemadrift", flag.ContinueOnError)
	globalFS.SetOutput(os.Stderr)
	formatFlag := globalFS.String("output-format", "", "output format: text or json (default text)")
	if err := globalFS.Parse(argv); err != nil {
		return 2
	}

	g := GlobalOptions{Format: FormatText, Opts: schemadrift.DefaultOptions()}

	cfg, err := schemadrift.LoadConfig(ConfigFile)
	if err != nil {
		printError(FormatText, err.Error())
		return 2
	}
	g.Opts = cfg.Apply(g.Opts)
	if cfg.OutputFormat != "" {
		if f, ok := ParseOutputFormat(cfg.OutputFormat); ok {
			g.Format = f
		}
	}
	if *formatFlag != "" {
		f, ok := ParseOutputFormat(*formatFlag)
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid -output-format %q (want text or json)\n", *formatFlag)
			return 2
		}
		g.Format = f
	}

	args := globalFS.Args()
	if len(args) == 0 {
		printUsage(os.Stderr)
		return 2
	}

	verb := args[0]
	rest := args[1:]
	switch verb {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	case "get":
		return RunGet(g, rest)
	case "compare":
		return RunCompare(g, rest)
	case "validate":
		return RunValidate(g, rest)
	}
	fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", verb)
	printUsage(os.Stderr)
	return 2
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "schemadrift - schema snapshot and drift utility")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  schemadrift [-output-format text|json] get -file <data> -output <snapshot.json>")
	fmt.Fprintln(w, "  schemadrift [-output-format text|json] compare -file1 <snapshot.json> -file2 <snapshot.json>")
	fmt.Fprintln(w, "  schemadrift [-output-format text|json] validate -data-file <data> -schema-file <snapshot.json> [-summary-only]")
	fmt.Fprintln(w, "\nSupported data files: CSV, TSV, XLS/XLSX, JSON (list of objects or a single object).")
	fmt.Fprintln(w, "Sampling caps can be set in "+ConfigFile+" (sample_rows, max_unique_values, output_format).")
}
