package main

import "github.com/martijnfolmer/sudokugen/cmd"

func main() {
	cmd.Execute()
}
