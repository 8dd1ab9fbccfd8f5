// Command mkstyle writes the built-in default stylesheet to a file, as
// a starting point for custom themes.
package main

import (
	"flag"
	"fmt"
	"os"

	"fredulator/calcos/theme"
)

func main() {
	var (
		outPath = flag.String("o", "styles.css", "Output stylesheet path.")
		force   = flag.Bool("force", false, "Overwrite an existing file.")
	)
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*outPath); err == nil {
			fatalf("%s already exists (use -force to overwrite)", *outPath)
		}
	}

	if err := os.WriteFile(*outPath, []byte(theme.DefaultStylesheet), 0o644); err != nil {
		fatalf("write %s: %v", *outPath, err)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
