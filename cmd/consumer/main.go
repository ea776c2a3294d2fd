package main

import "github.com/clearpath-au/go-remit/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
