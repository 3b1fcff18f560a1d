package main

import (
	"os"

	"github.com/GriffinCanCode/calcshell/cmd/calcshell/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
