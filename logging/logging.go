package logging

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "INFO: ", log.Lshortfile)
	WarnLog = log.New(os.Stdout, "WARN: ", log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "ERR: ", log.Lshortfile)
)

// SetOutput redirects all loggers to w. Mostly useful for capturing diagnostics in tests.
func SetOutput(w io.Writer) {
	InfoLog.SetOutput(w)
	WarnLog.SetOutput(w)
	ErrLog.SetOutput(w)
}

// ResetOutput restores the default destinations (stdout for info/warn, stderr for errors)
func ResetOutput() {
	InfoLog.SetOutput(os.Stdout)
	WarnLog.SetOutput(os.Stdout)
	ErrLog.SetOutput(os.Stderr)
}
