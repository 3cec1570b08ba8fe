// Package main is the entry point for the lagg CLI.
package main

import "github.com/donaldgifford/listing-aggregator/cmd/lagg/cmd"

func main() {
	cmd.Execute()
}
