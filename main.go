package main

import "github.com/gaurav-prasanna/glosswalk/cmd"

func main() {
	cmd.Execute()
}
