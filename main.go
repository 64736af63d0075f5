package main

import "github.com/mmuldo/colorlab/cmd"

func main() {
	cmd.Execute()
}
