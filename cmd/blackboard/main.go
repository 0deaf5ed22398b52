// Command blackboard is a freehand drawing pad for the terminal. Without a
// subcommand it opens the interactive pad; replay renders trace scripts to
// image files.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
