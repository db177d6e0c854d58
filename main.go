package main

import "runner-check/cmd"

func main() {
	cmd.Execute()
}
