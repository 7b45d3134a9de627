package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/vaulthub/vaulthub-cli/internal/client/cli"
	"github.com/vaulthub/vaulthub-cli/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	// A callback URL from an OIDC or magic-link flow may be passed as the
	// last argument; its one-time token is consumed during bootstrap.
	launchURL := ""
	if args := os.Args[1:]; len(args) > 0 {
		if last := args[len(args)-1]; strings.HasPrefix(last, "http://") || strings.HasPrefix(last, "https://") {
			launchURL = last
		}
	}

	app.Run(ctx, launchURL)
}
