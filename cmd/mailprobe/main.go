// Command mailprobe finds business-contact email addresses for company
// websites and optionally sends an outreach message to each one.
package main

import (
	"os"

	"github.com/mailprobe/mailprobe/cmd/mailprobe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
