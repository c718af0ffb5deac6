package main

import (
	"github.com/jbendavid/bidsbatch/cmd/bidsbatch/cmd"
	"github.com/jbendavid/bidsbatch/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	cmd.Execute()
}
