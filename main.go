// Package main is the entry point for the opshow CLI.
package main

import "opshow.dev/pkg/opshow/cmd"

func main() {
	cmd.Execute()
}
