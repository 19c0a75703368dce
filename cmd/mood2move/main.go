package main

import "github.com/nfrund/mood2move/cmd/mood2move/cmd"

func main() {
	cmd.Execute()
}
