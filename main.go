package main

import "mod-compat/cmd"

func main() {
	cmd.Execute()
}
