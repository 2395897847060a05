package main

import "github.com/chriserin/slr/cmd"

func main() {
	cmd.Execute()
}
