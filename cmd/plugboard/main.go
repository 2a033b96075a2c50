// plugboard — terminal node-graph patch editor.
//
// Run: go run ./cmd/plugboard/ edit
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
