package main

import (
	enrollcmd "github.com/initializ/enroll/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	enrollcmd.SetVersionInfo(version, commit)
	enrollcmd.Execute()
}
