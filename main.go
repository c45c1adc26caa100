package main

import "github.com/jakub-m/sudoku-generator/cmd"

func main() {
	cmd.Execute()
}
