package main

import "github.com/neilm5/pyrite/cmd/pyrite/cmd"

func main() {
	cmd.Execute()
}
