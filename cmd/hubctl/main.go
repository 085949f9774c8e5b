package main

import "hub-allocation-service/cmd/hubctl/command"

func main() {
	command.Execute()
}
