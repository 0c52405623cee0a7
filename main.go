package main

import "layerit/cmd"

func main() {
	cmd.Execute()
}
