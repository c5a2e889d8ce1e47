package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/quizdesk/internal/buildinfo"
	"github.com/dmitrijs2005/quizdesk/internal/cli"
	"github.com/dmitrijs2005/quizdesk/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stderr)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
