package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userkeep/internal/cli"
	"github.com/dmitrijs2005/userkeep/internal/config"
	"github.com/dmitrijs2005/userkeep/internal/flagx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	args := flagx.Positional(os.Args[1:], []string{"-c", "-config", "-f", "-l"})
	if err := app.Run(ctx, args); err != nil {
		log.Fatalf("%v", err)
	}

}
