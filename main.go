package main

import "github.com/mehulsinha/offerscout/cmd"

func main() {
	cmd.Execute()
}
