package main

import "github.com/jjenkins/legiscan-relay/cmd"

func main() {
	cmd.Execute()
}
