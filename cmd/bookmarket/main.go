package main

import (
	"fmt"
	"os"

	ucli "github.com/urfave/cli/v2"

	"github.com/openmarket-labs/bookmarket/internal/cli"
	"github.com/openmarket-labs/bookmarket/internal/infrastructure/config"
)

func main() {
	app := &ucli.App{
		Name:  "bookmarket",
		Usage: "Marketplace purchase simulator with cheapest-offer allocation",
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the config file",
			},
		},
		Commands: []*ucli.Command{
			runCmd,
			serveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var runCmd = &ucli.Command{
	Name:  "run",
	Usage: "Run an interactive buyer session on the console",
	Flags: []ucli.Flag{
		&ucli.BoolFlag{
			Name:  "broker",
			Usage: "settle the session through a broker",
		},
		&ucli.BoolFlag{
			Name:  "verbose",
			Usage: "verbose output",
		},
	},
	Action: func(ctx *ucli.Context) error {
		cfg := config.LoadOrEnvWithPath(ctx.String("config"))
		flags := cli.RunFlags{
			WithBroker: ctx.Bool("broker"),
			Verbose:    ctx.Bool("verbose"),
		}
		return cli.RunSession(cfg, flags, os.Stdin, os.Stdout)
	},
}

var serveCmd = &ucli.Command{
	Name:  "serve",
	Usage: "Expose the marketplace over HTTP",
	Flags: []ucli.Flag{
		&ucli.IntFlag{
			Name:  "port",
			Usage: "port to listen on (overrides config)",
		},
		&ucli.StringFlag{
			Name:  "buyer",
			Usage: "buyer name for the session (overrides config)",
		},
		&ucli.BoolFlag{
			Name:  "verbose",
			Usage: "verbose output",
		},
	},
	Action: func(ctx *ucli.Context) error {
		cfg := config.LoadOrEnvWithPath(ctx.String("config"))
		flags := cli.ServeFlags{
			Port:    ctx.Int("port"),
			Buyer:   ctx.String("buyer"),
			Verbose: ctx.Bool("verbose"),
		}
		return cli.RunServe(cfg, flags)
	},
}
