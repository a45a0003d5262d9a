// Package main is the entry point for the viewmock CLI.
package main

import "gooze.dev/pkg/viewmock/cmd"

func main() {
	cmd.Execute()
}
