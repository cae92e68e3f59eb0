// Package main is the entry point for the EventHub CLI.
package main

import (
	"eventhub/cli/cmd"
)

func main() {
	cmd.Execute()
}
