package main

import (
	"context"
	"log"

	"github.com/Aljenshin/portfolio-console/internal/cli"
	"github.com/Aljenshin/portfolio-console/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
