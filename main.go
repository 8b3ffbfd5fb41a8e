package main

import "github.com/Pandiyarajk/espflash/cmd"

func main() {
	cmd.Execute()
}
