package main

import "github.com/gatelab/gatebench-cli/cmd"

func main() {
	cmd.Execute()
}
