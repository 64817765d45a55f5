package main

import "github.com/datascribe/datascribe-go/cmd"

func main() {
	cmd.Execute()
}
