package errors

import (
	"os"

	log "github.com/aaronfloresserna/assistantUACH/pkg/logger"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorAndPrint logs an error through the default logger.
func CheckErrorAndPrint(err error) {
	if err == nil {
		return
	}
	log.Error(err.Error())
}

// CheckErrorPrintAndExit logs an error and exits with exit code 1.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}
	CheckErrorAndPrint(err)

	// revive:disable-next-line:deep-exit
	Exit(1)
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
