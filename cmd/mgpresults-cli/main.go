package main

import (
	"mgpresults/cmd/mgpresults-cli/commands"
	"mgpresults/lib/util/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
