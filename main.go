package main

import "github.com/fguardian/backend/cmd"

func main() {
	cmd.Execute()
}
