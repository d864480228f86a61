package main

import "github.com/mholst/branchdeck/cmd"

func main() {
	cmd.Execute()
}
