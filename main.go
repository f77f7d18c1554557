package main

import "github.com/cfdsolve/goeos/cmd"

func main() {
	cmd.Execute()
}
