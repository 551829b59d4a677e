// Command numseq prints the numeric sequence of its arguments or of standard input.
package main

import (
	"os"

	"github.com/spf13/viper"
)

func main() {
	cmd := newRootCmd(viper.New(), os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
