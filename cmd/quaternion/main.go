// Command quaternion multiplies quaternions written in bracketed notation.
//
//	$ echo '(i+j+20)(j-9)' | quaternion
//	-9i+11j+k-181
//
// See quaternion -h for flags and the check subcommand.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
