package cli

import (
	"flag"
	"fmt"
	"os"

	schemadrift "github.com/schemadrift/schemadrift"
)

// RunGet infers the schema of a data file and saves it as a snapshot.
func RunGet(g GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "path to the input data file (CSV, TSV, XLSX, JSON)")
	output := fs.String("output", "", "path to save the inferred schema JSON")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if *file == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "missing -file or -output")
		fs.Usage()
		return 2
	}

	if g.Format == FormatText {
		banner.Fprintf(os.Stdout, "\n--- Inferring Schema from: %s ---\n", *file)
		fmt.Printf("Input File: %s\n", *file)
		fmt.Printf("Output File: %s\n", *output)
	}

	schema, err := schemadrift.Infer(*file, g.Opts)
	if err != nil {
		printError(g.Format, "Failed to infer schema: "+err.Error())
		return 1
	}
	if err := schemadrift.Save(schema, *output); err != nil {
		printError(g.Format, "Failed to save schema snapshot: "+err.Error())
		return 1
	}

	msg := "Schema successfully inferred and saved to: " + *output
	if g.Format == FormatJSON {
		printJSON(os.Stdout, map[string]string{"status": "success", "message": msg})
		return 0
	}
	okText.Fprintln(os.Stdout, msg)
	banner.Fprintln(os.Stdout, "\n--- Inferred Schema (Preview) ---")
	printJSON(os.Stdout, schema)
	return 0
}
