package main

import "github.com/rprtr258/poolreuse/cmd"

func main() {
	cmd.Execute()
}
