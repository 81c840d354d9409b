package main

import (
	"os"

	"github.com/hamidzr/gscale/internal/cli"
	"github.com/hamidzr/gscale/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	cmd := cli.InitCLI()
	logger.SetupLogger(os.Getenv("GSCALE_LOG_LEVEL"))
	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
