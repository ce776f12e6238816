package main

import "github.com/xsm-dev/xsm/cmd"

func main() {
	cmd.Execute()
}
