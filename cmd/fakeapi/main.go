package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/creatorpilot/internal/fakeapi"
	"github.com/dmitrijs2005/creatorpilot/internal/fakeapi/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := fakeapi.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
