package main

import "punch/cmd"

func main() {
	cmd.Execute()
}
