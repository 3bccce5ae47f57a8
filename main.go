package main

import "github.com/notargets/gocryst/cmd"

func main() {
	cmd.Execute()
}
