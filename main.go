package main

import "github.com/xvierd/reel-detox/cmd"

func main() {
	cmd.Execute()
}
