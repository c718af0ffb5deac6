package common

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/jbendavid/bidsbatch/internal/common/logging"
)

// ConfigureCommandLineLogging routes log output to stderr with a bare-message
// formatter, leaving stdout free for command output.
func ConfigureCommandLineLogging() {
	commandLineFormatter := new(logging.CommandLineFormatter)
	log.SetFormatter(commandLineFormatter)
	log.SetOutput(os.Stderr)
}
