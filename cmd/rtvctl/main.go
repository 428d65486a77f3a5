package main

import "github.com/nullstride/rtvctl/cmd/rtvctl/cmd"

func main() {
	cmd.Execute()
}
