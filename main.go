package main

import "github.com/notargets/femapvtk/cmd"

func main() {
	cmd.Execute()
}
