// Command atsscore scores resumes from the command line: structured JSON
// records, PDF or DOCX documents, or the built-in sample.
package main

import (
	"os"

	"resume-scorer/internal/shared/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		telemetry.Sync()
		os.Exit(1)
	}
	telemetry.Sync()
}
