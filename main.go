package main

import "github.com/r0b0tAnthony/sensu-plugins-http/cmd"

// execCmd is swappable for testing.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
