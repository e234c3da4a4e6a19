package main

import "servermon/cmd"

func main() {
	cmd.Execute()
}
