package main

import "github.com/bryanchriswhite/pixwin/cmd/pixwin/commands"

func main() {
	commands.Execute()
}
