package main

import "github.com/jamiealquiza/nodemapr/cmd/nodemapr/commands"

func main() {
	commands.Execute()
}
