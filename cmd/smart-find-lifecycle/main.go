package main

import (
	"os"

	"github.com/light-merlin-dark/smart-find/internal/cli"
)

// version은 빌드 시 -ldflags로 주입된다.
var version = "dev"

func main() {
	app := cli.NewApp()
	app.Version = version
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
