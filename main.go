package main

import "github.com/bloodmagesoftware/solidify/cmd"

func main() {
	cmd.Execute()
}
