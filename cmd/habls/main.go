package main

import "github.com/kvale/habls/cmd/habls/commands"

func main() {
	commands.Execute()
}
