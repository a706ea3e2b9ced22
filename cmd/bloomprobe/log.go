package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/danish45007/velocitybloom"
	"github.com/danish45007/velocitybloom/internal/probe"
)

// Loggers per subsystem. A single backend logger writing to stderr is created
// and all subsystem loggers created from it write to the backend, so stdout
// only carries command output.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	mainLog  = backendLog.Logger("BPRB")
	bloomLog = backendLog.Logger(velocitybloom.Subsystem)
	probeLog = backendLog.Logger(probe.Subsystem)

	subsystemLoggers = []btclog.Logger{mainLog, bloomLog, probeLog}
)

// Initialize package-global logger variables.
func init() {
	velocitybloom.UseLogger(bloomLog)
	probe.UseLogger(probeLog)
}

// setLogLevels sets the logging level of every subsystem logger.
func setLogLevels(debugLevel string) error {
	level, ok := btclog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", debugLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
