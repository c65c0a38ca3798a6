package main

import "os"

func main() {
	NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(os.Args[1:])
}
