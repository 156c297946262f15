package cli

import (
	"flag"
	"fmt"
	"os"

	schemadrift "github.com/schemadrift/schemadrift"
)

// RunCompare loads two snapshots and reports their drift. Exit codes:
// 0 identical, 1 different, 2 load failure.
func RunCompare(g GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file1 := fs.String("file1", "", "path to the first schema snapshot")
	file2 := fs.String("file2", "", "path to the second schema snapshot")
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if *file1 == "" || *file2 == "" {
		fmt.Fprintln(os.Stderr, "missing -file1 or -file2")
		fs.Usage()
		return 2
	}

	if g.Format == FormatText {
		banner.Fprintln(os.Stdout, "\n--- Comparing Schemas ---")
		fmt.Printf("Schema 1: %s\n", *file1)
		fmt.Printf("Schema 2: %s\n", *file2)
	}

	s1, err := schemadrift.Load(*file1)
	if err != nil {
		printError(g.Format, "Error loading schema file '"+*file1+"': "+err.Error())
		return 2
	}
	s2, err := schemadrift.Load(*file2)
	if err != nil {
		printError(g.Format, "Error loading schema file '"+*file2+"': "+err.Error())
		return 2
	}

	diff, differs := schemadrift.Compare(s1, s2)

	if g.Format == FormatJSON {
		printJSON(os.Stdout, map[string]any{
			"schema1_path":  *file1,
			"schema2_path":  *file2,
			"are_identical": !differs,
			"differences":   diff,
		})
		if differs {
			return 1
		}
		return 0
	}

	banner.Fprintln(os.Stdout, "\n--- Comparison Results ---")
	if differs {
		failBold.Fprintln(os.Stdout, "Schemas are DIFFERENT!")
		printJSON(os.Stdout, diff)
		banner.Fprintln(os.Stdout, "--------------------------")
		return 1
	}
	okBold.Fprintln(os.Stdout, "Schemas are IDENTICAL.")
	banner.Fprintln(os.Stdout, "--------------------------")
	return 0
}
