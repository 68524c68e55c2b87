package main

import "github.com/rtiworkbench/rti-cli/cmd"

func main() {
	cmd.Execute()
}
