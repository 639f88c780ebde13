package main

import (
	"github.com/mj1618/selwatch/cmd"

	// Registers the UI Automation provider on Windows.
	_ "github.com/mj1618/selwatch/internal/platform/windows"
)

func main() {
	cmd.Execute()
}
