package main

import "ticklist/cmd"

func main() {
	cmd.Execute()
}
