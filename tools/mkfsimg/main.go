package main

import (
	"fmt"
	"os"

	"github.com/AlexSunNik/ECE391-Kernel/tools/mkfsimg/cmd"
)

func main() {
	if err := cmd.SetupCommands().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
