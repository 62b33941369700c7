package main

import "github.com/Swissguarde/dimex-sdc/cmd"

func main() {
	cmd.Execute()
}
