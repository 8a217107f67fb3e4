package main

import "github.com/mouse-blink/twins/cmd"

func main() {
	cmd.Execute()
}
