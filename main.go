package main

import "github.com/notargets/gasdyn/cmd"

func main() {
	cmd.Execute()
}
