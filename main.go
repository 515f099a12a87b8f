package main

import "github.com/lai323/vocabcard/cmd"

func main() {
	cmd.Execute()
}
