package cli

import (
	"flag"
	"fmt"
	"os"

	schemadrift "github.com/schemadrift/schemadrift"
)

type recordResult struct {
	RecordNumber int      `json:"record_number"`
	IsValid      bool     `json:"is_valid"`
	Errors       []string `json:"errors"`
}

// RunValidate checks every record of a data file against a snapshot.
// Exit codes: 0 all valid (or no data), 1 any invalid or failure.
func RunValidate(g GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataFile := fs.String("data-file", "", "path to the input data file (CSV, TSV, XLSX, JSON)")
	schemaFile := fs.String("schema-file", "", "path to the schema snapshot")
	summaryOnly := fs.Bool("summary-only", false, "show only the overall validation summary")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if *dataFile == "" || *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "missing -data-file or -schema-file")
		fs.Usage()
		return 2
	}

	if g.Format == FormatText {
		banner.Fprintln(os.Stdout, "\n--- Validating Data Against Schema ---")
		fmt.Printf("Data File: %s\n", *dataFile)
		fmt.Printf("Schema File: %s\n", *schemaFile)
	}

	if _, err := os.Stat(*dataFile); err != nil {
		printError(g.Format, "Data file not found: '"+*dataFile+"'")
		return 1
	}
	table, err := schemadrift.ReadTable(*dataFile)
	if err != nil {
		if schemadrift.CodeOf(err) == schemadrift.CodeEmptyInput {
			printWarning(g.Format, "No data found in data file. No validation performed.")
			return 0
		}
		printError(g.Format, "Error reading data file '"+*dataFile+"': "+err.Error())
		return 1
	}
	records := table.Records()
	if len(records) == 0 {
		printWarning(g.Format, "No data found in data file. No validation performed.")
		return 0
	}

	schema, err := schemadrift.Load(*schemaFile)
	if err != nil {
		printError(g.Format, "Error loading schema file '"+*schemaFile+"': "+err.Error())
		return 1
	}

	if g.Format == FormatText && !*summaryOnly {
		banner.Fprintln(os.Stdout, "\n--- Validation Results (Detail) ---")
	}

	allValid := true
	results := make([]recordResult, 0, len(records))
	for i, rec := range records {
		verdict := schemadrift.Validate(rec, schema)
		results = append(results, recordResult{
			RecordNumber: i + 1,
			IsValid:      verdict.Valid,
			Errors:       verdict.Violations,
		})
		if !verdict.Valid {
			allValid = false
		}
		if g.Format == FormatText && !*summaryOnly {
			if verdict.Valid {
				okText.Fprintf(os.Stdout, "Record %d: VALID\n", i+1)
			} else {
				failBold.Fprintf(os.Stdout, "Record %d: INVALID\n", i+1)
				for _, v := range verdict.Violations {
					warnText.Fprintf(os.Stdout, "   - %s\n", v)
				}
			}
		}
	}

	if g.Format == FormatJSON {
		out := map[string]any{
			"data_file":     *dataFile,
			"schema_file":   *schemaFile,
			"overall_valid": allValid,
		}
		if !*summaryOnly {
			out["record_results"] = results
		}
		printJSON(os.Stdout, out)
	} else {
		banner.Fprintln(os.Stdout, "\n--------------------------")
		if allValid {
			okBold.Fprintln(os.Stdout, "All records are VALID according to the schema.")
		} else {
			failBold.Fprintln(os.Stdout, "Some records are INVALID according to the schema. Review details above.")
		}
		banner.Fprintln(os.Stdout, "--------------------------")
	}

	if !allValid {
		return 1
	}
	return 0
}
