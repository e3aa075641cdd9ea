package main

import "github.com/gaurav-prasanna/blockhead/cmd"

func main() {
	cmd.Execute()
}
