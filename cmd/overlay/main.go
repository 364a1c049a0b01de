package main

import "github.com/arl/go-overlay/cmd/overlay/cmd"

func main() {
	cmd.Execute()
}
