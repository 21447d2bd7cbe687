package main

import "github.com/mikotoken/vault/cmd/vault/cmd"

func main() {
	cmd.Execute()
}
