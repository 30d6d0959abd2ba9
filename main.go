package main

import "github.com/harwood/mediamap/cmd"

func main() {
	cmd.Execute()
}
