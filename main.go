package main

import "github.com/clems4ever/token-sorter/cmd"

func main() {
	cmd.Execute()
}
