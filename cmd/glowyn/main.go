package main

import "github.com/AtRiskMedia/glowyn-go/cmd/glowyn/commands"

func main() {
	commands.Execute()
}
