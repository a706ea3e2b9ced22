package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[bloomprobe] %v\n", err)
	os.Exit(1)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bloomprobe"
	app.Usage = "size, load and probe velocitybloom filters"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "debuglevel",
			Value: "info",
			Usage: "Logging level for all subsystems {trace, debug, " +
				"info, warn, error, critical, off}.",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setLogLevels(ctx.GlobalString("debuglevel"))
	}
	app.Commands = []cli.Command{
		paramsCommand,
		checkCommand,
		queryCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
