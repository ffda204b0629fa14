package main

import "github.com/lakebot/lakebot/cmd"

func main() {
	cmd.Execute()
}
