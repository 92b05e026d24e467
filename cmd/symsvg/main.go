package main

import "github.com/OpenTraceLab/symsvg/cmd/symsvg/cmd"

func main() {
	cmd.Execute()
}
