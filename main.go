package main

import "github.com/rail44/calc/cmd"

func main() {
	cmd.Execute()
}
