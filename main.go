package main

import (
	cmd "github.com/revmark/revmark/cmd/revmark"
	"github.com/revmark/revmark/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting revmark")
	cmd.Execute()
}
