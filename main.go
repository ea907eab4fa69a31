package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aaronfloresserna/assistantUACH/cmd"
	errUtils "github.com/aaronfloresserna/assistantUACH/errors"
)

func main() {
	// Set up signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Exit with the POSIX exit code (128 + signal number).
		// Use errUtils.OsExit to allow test interception.
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	if err := cmd.Execute(); err != nil {
		errUtils.CheckErrorPrintAndExit(err)
	}
}
