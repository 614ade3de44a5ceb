package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/creatorpilot/internal/buildinfo"
	"github.com/dmitrijs2005/creatorpilot/internal/client/cli"
	"github.com/dmitrijs2005/creatorpilot/internal/client/config"
	"github.com/dmitrijs2005/creatorpilot/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("%v", err)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
