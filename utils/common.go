package utils

import "fmt"

// VerbosePrint prints the given format only when verbose output is enabled.
func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}
