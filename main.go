// GNanno is a CLI tool for reading, validating and exporting GO
// Annotation Files (GAF).
package main

import "github.com/gnames/gnanno/cmd"

func main() {
	cmd.Execute()
}
