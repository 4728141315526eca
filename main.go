package main

import "carbon-tracker/cmd"

func main() {
	cmd.Execute()
}
