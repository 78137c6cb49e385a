package main

import "github.com/tbickford/catver/cmd"

func main() {
	cmd.Execute()
}
