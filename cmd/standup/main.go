package main

import (
	"os"

	"github.com/dshills/standup/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
