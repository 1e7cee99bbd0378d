package main

import "github.com/meshstack-ai/mesh-cli/cmd"

func main() {
	cmd.Execute()
}
